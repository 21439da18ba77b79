package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bishopxxx/Bishop-blog/internal/adapters/httpapi/middleware"
	postPort "github.com/Bishopxxx/Bishop-blog/internal/ports/post"
)

type PostController struct {
	posts PostUseCase
}

func NewPostController(posts PostUseCase) *PostController {
	return &PostController{posts: posts}
}

// Home lists all posts, newest first.
func (ctl *PostController) Home(c *gin.Context) {
	posts, err := ctl.posts.List(c.Request.Context())
	if err != nil {
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
		return
	}
	render(c, http.StatusOK, "home.html", "Home", gin.H{"Posts": posts})
}

// Show renders one post, or the 404 page for an unknown id.
func (ctl *PostController) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render(c, http.StatusNotFound, "404.html", "Not found", nil)
		return
	}

	p, err := ctl.posts.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, postPort.ErrPostNotFound):
		render(c, http.StatusNotFound, "404.html", "Not found", nil)
		return
	case err != nil:
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
		return
	}
	render(c, http.StatusOK, "post.html", p.Title, gin.H{"Post": p})
}

type postForm struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

func (ctl *PostController) ShowCreate(c *gin.Context) {
	render(c, http.StatusOK, "create.html", "New post", gin.H{"Form": postForm{}})
}

// Create persists a new post authored by the current user.
func (ctl *PostController) Create(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "create.html", "New post", gin.H{
			"Form":  form,
			"Error": "Title and content are required.",
		})
		return
	}

	author := middleware.CurrentUser(c)
	if _, err := ctl.posts.Create(c.Request.Context(), form.Title, form.Content, author.ID); err != nil {
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ShowEdit pre-fills the edit form with the post's current title and content.
func (ctl *PostController) ShowEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render(c, http.StatusNotFound, "404.html", "Not found", nil)
		return
	}

	p, err := ctl.posts.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, postPort.ErrPostNotFound):
		render(c, http.StatusNotFound, "404.html", "Not found", nil)
		return
	case err != nil:
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
		return
	}

	render(c, http.StatusOK, "edit.html", "Edit post", gin.H{
		"PostID": p.ID,
		"Form":   postForm{Title: p.Title, Content: p.Content},
	})
}

// Edit applies the update. A failed update re-shows the form with a message
// instead of pretending the edit went through.
func (ctl *PostController) Edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render(c, http.StatusNotFound, "404.html", "Not found", nil)
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "edit.html", "Edit post", gin.H{
			"PostID": id,
			"Form":   form,
			"Error":  "Title and content are required.",
		})
		return
	}

	_, err := ctl.posts.Update(c.Request.Context(), id, form.Title, form.Content)
	switch {
	case errors.Is(err, postPort.ErrPostNotFound):
		render(c, http.StatusNotFound, "404.html", "Not found", nil)
		return
	case err != nil:
		render(c, http.StatusInternalServerError, "edit.html", "Edit post", gin.H{
			"PostID": id,
			"Form":   form,
			"Error":  "Could not save the post. Please try again.",
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Delete removes a post. A failed delete reports instead of redirecting as
// success.
func (ctl *PostController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render(c, http.StatusNotFound, "404.html", "Not found", nil)
		return
	}

	err := ctl.posts.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, postPort.ErrPostNotFound):
		render(c, http.StatusNotFound, "404.html", "Not found", nil)
		return
	case err != nil:
		setFlash(c, "Could not delete the post. Please try again.")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
