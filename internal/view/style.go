package view

// Stylesheet is served at /static/app.css.
const Stylesheet = `
:root { --accent: #4f6df5; --danger: #d64545; --muted: #6b7280; }
* { box-sizing: border-box; }
body { font-family: system-ui, sans-serif; margin: 0; color: #1f2430; background: #f5f6f8; }
main { max-width: 640px; margin: 0 auto; padding: 1rem; }
.nav { display: flex; gap: 1rem; align-items: center; padding: 0.6rem 1rem; background: #fff; border-bottom: 1px solid #e3e5ea; }
.nav .brand { font-weight: 700; color: var(--accent); text-decoration: none; }
.nav a { color: inherit; text-decoration: none; }
.nav form { margin-left: auto; }
.muted { color: var(--muted); font-size: 0.9em; }
.notice { padding: 0.6rem 1rem; margin: 0.5rem auto; max-width: 640px; border-radius: 6px; }
.notice-info { background: #e3efe6; color: #1e5631; }
.notice-error { background: #f8e1e1; color: #8a1f1f; }
.stack { display: flex; flex-direction: column; gap: 0.5rem; }
.stack textarea { min-height: 4.5rem; }
.field-error { color: var(--danger); font-size: 0.85em; }
.inline { display: inline; }
button { cursor: pointer; border: 1px solid #d0d3da; background: #fff; border-radius: 6px; padding: 0.35rem 0.8rem; }
button.active { background: var(--accent); color: #fff; border-color: var(--accent); }
button.danger { background: var(--danger); color: #fff; border-color: var(--danger); }
.button { display: inline-block; border: 1px solid #d0d3da; border-radius: 6px; padding: 0.35rem 0.8rem; text-decoration: none; color: inherit; }
.post, .comment { background: #fff; border: 1px solid #e3e5ea; border-radius: 8px; padding: 0.8rem; margin: 0.8rem 0; }
.post header, .comment header { display: flex; gap: 0.5rem; align-items: center; }
.post footer, .comment footer { display: flex; gap: 0.5rem; align-items: center; margin-top: 0.5rem; }
.post-image { max-width: 100%; border-radius: 6px; }
.avatar { width: 32px; height: 32px; border-radius: 50%; background: var(--accent); color: #fff; display: inline-flex; align-items: center; justify-content: center; font-size: 0.8em; overflow: hidden; }
.avatar img { width: 100%; height: 100%; object-fit: cover; }
.avatar-large { width: 120px; height: 120px; border-radius: 50%; object-fit: cover; }
.replies { margin-left: 1.5rem; border-left: 2px solid #e3e5ea; padding-left: 0.8rem; }
.score { min-width: 1.5rem; text-align: center; font-weight: 600; }
ul.users, ul.suggestions, ul.notifications { list-style: none; padding: 0; }
ul.users li, ul.notifications li { background: #fff; border: 1px solid #e3e5ea; border-radius: 8px; padding: 0.6rem 0.8rem; margin: 0.4rem 0; display: flex; gap: 0.5rem; align-items: center; }
ul.notifications li.unread { border-left: 3px solid var(--accent); }
.actions { display: flex; gap: 0.5rem; }
`
