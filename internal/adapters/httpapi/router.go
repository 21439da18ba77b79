package httpapi

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bishopxxx/Bishop-blog/internal/adapters/httpapi/middleware"
	"github.com/Bishopxxx/Bishop-blog/internal/adapters/httpapi/views"
	"github.com/Bishopxxx/Bishop-blog/internal/config"
	postEntity "github.com/Bishopxxx/Bishop-blog/internal/core/post"
	sessionEntity "github.com/Bishopxxx/Bishop-blog/internal/core/session"
	userEntity "github.com/Bishopxxx/Bishop-blog/internal/core/user"
)

// UserUseCase is what the controllers need from the user service (inbound port).
type UserUseCase interface {
	Register(ctx context.Context, email, username, firstname, lastname, password string) (*userEntity.User, error)
	Authenticate(ctx context.Context, email, password string) (*userEntity.User, error)
}

type PostUseCase interface {
	Create(ctx context.Context, title, content string, authorID uint) (*postEntity.Post, error)
	List(ctx context.Context) ([]*postEntity.Post, error)
	Get(ctx context.Context, id uint) (*postEntity.Post, error)
	Update(ctx context.Context, id uint, title, content string) (*postEntity.Post, error)
	Delete(ctx context.Context, id uint) error
}

type SessionUseCase interface {
	Start(ctx context.Context, who sessionEntity.Identifiable) (string, error)
	Destroy(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*userEntity.User, error)
}

// SetupRoutes wires the controllers onto a gin engine. Use cases are
// injected; the engine owns nothing but routing and rendering.
func SetupRoutes(
	cfg *config.Config,
	logger *zap.Logger,
	userUC UserUseCase,
	postUC PostUseCase,
	sessionUC SessionUseCase,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic in handler",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		render(c, http.StatusInternalServerError, "500.html", "Error", nil)
	}))
	r.Use(middleware.LoadUser(sessionUC, cfg.CookieName))

	tmpl := template.Must(template.New("").ParseFS(views.Content, "templates/*.html", "includes/*.html"))
	r.SetHTMLTemplate(tmpl)

	uc := NewUserController(userUC, sessionUC, cfg.CookieName, cfg.SessionTTL)
	pc := NewPostController(postUC)
	pages := NewPageController()

	r.GET("/", pc.Home)
	r.GET("/post/:id", pc.Show)

	r.GET("/signup", uc.ShowSignup)
	r.POST("/signup", uc.Signup)
	r.GET("/login", uc.ShowLogin)
	r.POST("/login", uc.Login)
	r.GET("/logout", uc.Logout)

	auth := r.Group("/", middleware.RequireAuth())
	auth.GET("/create", pc.ShowCreate)
	auth.POST("/create", pc.Create)
	auth.GET("/edit/:id", pc.ShowEdit)
	auth.POST("/edit/:id", pc.Edit)
	auth.GET("/delete/:id", pc.Delete)
	auth.GET("/profile", uc.Profile)

	r.GET("/about", pages.About)
	r.GET("/contact", pages.Contact)
	r.GET("/termsandprivacy", pages.Terms)

	r.NoRoute(pages.NotFound)

	return r
}
