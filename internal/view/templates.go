package view

import (
	"html/template"

	"socialnet-client/internal/model"
)

// Page is the envelope every template renders from.
type Page struct {
	Title   string
	User    *model.User
	Notices []Notice
	Query   string
	Errors  map[string]string
	Form    map[string]string
	Data    any
}

// FieldError reads an inline validation error for a form field.
func (p Page) FieldError(field string) string {
	if p.Errors == nil {
		return ""
	}
	return p.Errors[field]
}

// FormValue reads a sticky form value for re-rendering after validation.
func (p Page) FormValue(field string) string {
	if p.Form == nil {
		return ""
	}
	return p.Form[field]
}

// Templates holds every page of the local UI. Parsed once at startup.
var Templates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"initials": Initials,
	"reltime":  RelativeTime,
}).Parse(pagesText))

const pagesText = `
{{define "head"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<nav class="nav">
  <a class="brand" href="/">socialnet</a>
  {{if .User}}
  <a href="/posts">Posts</a>
  <a href="/users">Users</a>
  <a href="/following">Following</a>
  <a href="/notifications">Notifications</a>
  <a href="/profile">{{.User.Username}}</a>
  <form class="inline" method="post" action="/logout"><button type="submit">Log out</button></form>
  {{else}}
  <a href="/login">Log in</a>
  <a href="/register">Register</a>
  {{end}}
</nav>
{{range .Notices}}<div class="notice notice-{{.Level}}" id="notice-{{.ID}}">{{.Message}}</div>{{end}}
<main>{{end}}

{{define "foot"}}</main>
</body>
</html>{{end}}

{{define "login"}}{{template "head" .}}
<h1>Log in</h1>
<form method="post" action="/login" class="stack">
  <label>Email
    <input type="email" name="email" value="{{.FormValue "email"}}">
    {{with .FieldError "email"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Password
    <input type="password" name="password">
    {{with .FieldError "password"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <button type="submit">Log in</button>
</form>
<p>No account yet? <a href="/register">Register</a>.</p>
{{template "foot" .}}{{end}}

{{define "register"}}{{template "head" .}}
<h1>Register</h1>
<form method="post" action="/register" class="stack">
  <label>First name
    <input name="firstname" value="{{.FormValue "firstname"}}">
    {{with .FieldError "firstname"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Last name
    <input name="lastname" value="{{.FormValue "lastname"}}">
    {{with .FieldError "lastname"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Username
    <input name="username" value="{{.FormValue "username"}}">
    {{with .FieldError "username"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Email
    <input type="email" name="email" value="{{.FormValue "email"}}">
    {{with .FieldError "email"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Password
    <input type="password" name="password">
    {{with .FieldError "password"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Confirm password
    <input type="password" name="confirmPassword">
    {{with .FieldError "confirmPassword"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <button type="submit">Create account</button>
</form>
{{template "foot" .}}{{end}}

{{define "post_card"}}
<article class="post">
  <header>
    <span class="avatar">{{if .Author.ProfilePicture}}<img src="{{.Author.ProfilePicture}}" alt="">{{else}}{{initials .Author.Firstname .Author.Lastname}}{{end}}</span>
    <a href="/users/{{.Author.ID}}">{{.Author.FullName}}</a>
    <span class="muted">@{{.Author.Username}} · {{reltime .CreatedAt}}</span>
  </header>
  <p>{{.Body}}</p>
  {{if .Image}}<img class="post-image" src="{{.Image}}" alt="">{{end}}
  <footer>
    <form class="inline" method="post" action="/posts/{{.ID}}/like"><button {{if eq .State.String "liked"}}class="active"{{end}}>Like</button></form>
    <span class="score">{{.Score}}</span>
    <form class="inline" method="post" action="/posts/{{.ID}}/dislike"><button {{if eq .State.String "disliked"}}class="active"{{end}}>Dislike</button></form>
    <a href="/posts/{{.ID}}">Comments ({{.CommentCount}})</a>
    {{if .CanManage}}
    <a href="/posts/{{.ID}}/edit">Edit</a>
    <a href="/posts/{{.ID}}/delete">Delete</a>
    {{end}}
  </footer>
</article>
{{end}}

{{define "home"}}{{template "head" .}}
<h1>Home</h1>
<form method="post" action="/posts" class="stack" enctype="multipart/form-data">
  <textarea name="body" placeholder="What's on your mind...">{{.FormValue "body"}}</textarea>
  {{with .FieldError "body"}}<span class="field-error">{{.}}</span>{{end}}
  <input type="file" name="image" accept="image/*">
  {{with .FieldError "image"}}<span class="field-error">{{.}}</span>{{end}}
  <button type="submit">Post</button>
</form>
{{if .Data.Suggestions}}
<section>
  <h2>Who to follow</h2>
  <ul class="suggestions">
  {{range .Data.Suggestions}}
    <li><a href="/users/{{.ID}}">{{.FullName}}</a>
      <form class="inline" method="post" action="/users/{{.ID}}/follow"><button>Follow</button></form>
    </li>
  {{end}}
  </ul>
</section>
{{end}}
<section>
<h2>Your feed</h2>
{{if .Data.Posts}}{{range .Data.Posts}}{{template "post_card" .}}{{end}}{{else}}<p class="muted">Nothing here yet. Follow people to fill your feed.</p>{{end}}
</section>
{{template "foot" .}}{{end}}

{{define "posts"}}{{template "head" .}}
<h1>All posts</h1>
<form method="get" action="/posts"><input name="q" value="{{.Query}}" placeholder="Filter by author or content"><button>Filter</button></form>
{{if .Data.Posts}}{{range .Data.Posts}}{{template "post_card" .}}{{end}}{{else}}<p class="muted">No posts match.</p>{{end}}
{{template "foot" .}}{{end}}

{{define "comment_node"}}
<div class="comment">
  <header>
    <span class="avatar">{{initials .Author.Firstname .Author.Lastname}}</span>
    <a href="/users/{{.Author.ID}}">{{.Author.FullName}}</a>
    <span class="muted">@{{.Author.Username}} · {{reltime .CreatedAt}}</span>
  </header>
  <p>{{.Message}}</p>
  <footer>
    <form class="inline" method="post" action="/posts/{{.PostID}}/comments/{{.ID}}/like"><button {{if eq .State.String "liked"}}class="active"{{end}}>Like</button></form>
    <span class="score">{{.Score}}</span>
    <form class="inline" method="post" action="/posts/{{.PostID}}/comments/{{.ID}}/dislike"><button {{if eq .State.String "disliked"}}class="active"{{end}}>Dislike</button></form>
    {{if .CanManage}}<a href="/posts/{{.PostID}}/comments/{{.ID}}/delete">Delete</a>{{end}}
  </footer>
  <details><summary>Reply</summary>
    <form method="post" action="/posts/{{.PostID}}/comments/{{.ID}}/reply" class="stack">
      <textarea name="message" placeholder="Enter your reply here..."></textarea>
      <button>Submit</button>
    </form>
  </details>
  {{if .CanManage}}
  <details><summary>Edit</summary>
    <form method="post" action="/posts/{{.PostID}}/comments/{{.ID}}/edit" class="stack">
      <textarea name="message">{{.Message}}</textarea>
      <button>Save changes</button>
    </form>
  </details>
  {{end}}
  {{if .Children}}<div class="replies">{{range .Children}}{{template "comment_node" .}}{{end}}</div>{{end}}
</div>
{{end}}

{{define "post"}}{{template "head" .}}
{{template "post_card" .Data.Post}}
<section>
<h2>Comments</h2>
<form method="post" action="/posts/{{.Data.Post.ID}}/comments" class="stack">
  <textarea name="message" placeholder="Enter your comment here...">{{.FormValue "message"}}</textarea>
  {{with .FieldError "message"}}<span class="field-error">{{.}}</span>{{end}}
  <button>Submit</button>
</form>
{{if .Data.Comments}}{{range .Data.Comments}}{{template "comment_node" .}}{{end}}{{else}}<p class="muted">No comments :(</p>{{end}}
</section>
{{template "foot" .}}{{end}}

{{define "post_edit"}}{{template "head" .}}
<h1>Edit post</h1>
<form method="post" action="/posts/{{.Data.Post.ID}}/edit" class="stack">
  <textarea name="body">{{.Data.Post.Body}}</textarea>
  {{with .FieldError "body"}}<span class="field-error">{{.}}</span>{{end}}
  <button>Save changes</button>
</form>
{{template "foot" .}}{{end}}

{{define "users"}}{{template "head" .}}
<h1>Users</h1>
<form method="get" action="/users"><input name="q" value="{{.Query}}" placeholder="Filter by name or username"><button>Filter</button></form>
<ul class="users">
{{range .Data.Users}}
  <li>
    <span class="avatar">{{if .ProfilePicture}}<img src="{{.ProfilePicture}}" alt="">{{else}}{{initials .Firstname .Lastname}}{{end}}</span>
    <a href="/users/{{.ID}}">{{.FullName}}</a> <span class="muted">@{{.Username}}</span>
    {{if .Followed}}
    <a class="button" href="/users/{{.ID}}/unfollow">Unfollow</a>
    {{else}}
    <form class="inline" method="post" action="/users/{{.ID}}/follow"><button>Follow</button></form>
    {{end}}
  </li>
{{end}}
</ul>
{{template "foot" .}}{{end}}

{{define "following"}}{{template "head" .}}
<h1>Following</h1>
{{if .Data.Users}}
<ul class="users">
{{range .Data.Users}}
  <li><a href="/users/{{.ID}}">{{.FullName}}</a> <span class="muted">@{{.Username}}</span>
    <a class="button" href="/users/{{.ID}}/unfollow">Unfollow</a>
  </li>
{{end}}
</ul>
{{else}}<p class="muted">You are not following anyone yet.</p>{{end}}
{{template "foot" .}}{{end}}

{{define "profile"}}{{template "head" .}}
<h1>{{.Data.Profile.FullName}}</h1>
<p class="muted">@{{.Data.Profile.Username}} · joined {{reltime .Data.Profile.CreatedAt}}</p>
{{if .Data.Profile.ProfilePicture}}<img class="avatar-large" src="{{.Data.Profile.ProfilePicture}}" alt="">{{end}}
{{with .Data.Profile.Description}}<p>{{.}}</p>{{end}}
{{if .Data.Own}}
<p><a href="/profile/edit">Edit profile</a> · <a href="/profile/delete">Delete account</a></p>
{{else}}
  {{if .Data.Followed}}
  <a class="button" href="/users/{{.Data.Profile.ID}}/unfollow">Unfollow</a>
  {{else}}
  <form class="inline" method="post" action="/users/{{.Data.Profile.ID}}/follow"><button>Follow</button></form>
  {{end}}
  {{if .Data.FriendRequestPending}}
  <form class="inline" method="post" action="/friend-requests/cancel"><input type="hidden" name="receiver" value="{{.Data.Profile.ID}}"><button>Cancel friend request</button></form>
  {{else}}
  <form class="inline" method="post" action="/friend-requests"><input type="hidden" name="receiver" value="{{.Data.Profile.ID}}"><button>Send friend request</button></form>
  {{end}}
{{end}}
<section>
<h2>Posts</h2>
{{if .Data.Posts}}{{range .Data.Posts}}{{template "post_card" .}}{{end}}{{else}}<p class="muted">No posts yet.</p>{{end}}
</section>
{{template "foot" .}}{{end}}

{{define "profile_edit"}}{{template "head" .}}
<h1>Edit profile</h1>
<form method="post" action="/profile/edit" class="stack">
  <label>First name
    <input name="firstname" value="{{.FormValue "firstname"}}">
    {{with .FieldError "firstname"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Last name
    <input name="lastname" value="{{.FormValue "lastname"}}">
    {{with .FieldError "lastname"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Email
    <input type="email" name="email" value="{{.FormValue "email"}}">
    {{with .FieldError "email"}}<span class="field-error">{{.}}</span>{{end}}
  </label>
  <label>Description
    <textarea name="description">{{.FormValue "description"}}</textarea>
  </label>
  <button>Save changes</button>
</form>
<h2>Profile picture</h2>
<form method="post" action="/profile/avatar" enctype="multipart/form-data" class="stack">
  <input type="file" name="avatar" accept="image/*">
  {{with .FieldError "avatar"}}<span class="field-error">{{.}}</span>{{end}}
  <button>Upload</button>
</form>
{{template "foot" .}}{{end}}

{{define "notifications"}}{{template "head" .}}
<h1>Notifications</h1>
<div class="actions">
  <form class="inline" method="post" action="/notifications/read-all"><button>Mark all read</button></form>
  <a class="button" href="/notifications/delete-all">Delete all</a>
</div>
{{if .Data.Notifications}}
<ul class="notifications">
{{range .Data.Notifications}}
  <li class="{{if .Read}}read{{else}}unread{{end}}">
    {{.Text}} <span class="muted">{{reltime .CreatedAt}}</span>
    {{if not .Read}}<form class="inline" method="post" action="/notifications/{{.ID}}/read"><button>Mark read</button></form>{{end}}
    {{if eq .Type "friend_request"}}
    <form class="inline" method="post" action="/friend-requests/accept"><input type="hidden" name="initiator" value="{{.Initiator.ID}}"><button>Accept</button></form>
    <form class="inline" method="post" action="/friend-requests/decline"><button>Decline</button></form>
    {{end}}
  </li>
{{end}}
</ul>
{{else}}<p class="muted">No notifications.</p>{{end}}
{{template "foot" .}}{{end}}

{{define "confirm"}}{{template "head" .}}
<h1>Are you absolutely sure?</h1>
<p>{{.Data.Message}}</p>
<form class="inline" method="post" action="{{.Data.Action}}"><button class="danger">Continue</button></form>
<a class="button" href="{{.Data.CancelURL}}">Cancel</a>
{{template "foot" .}}{{end}}

{{define "session_expired"}}{{template "head" .}}
<h1>Session ended</h1>
<p>Your session is over. Please log in again to continue.</p>
<form method="post" action="/logout"><button>Back to login</button></form>
{{template "foot" .}}{{end}}
`
