package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	"github.com/mikiasgoitom/Quill/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Quill/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions holds the transport settings read from configuration.
type RouterOptions struct {
	AllowedOrigins     []string
	RateLimitPerSecond float64
	Cookie             CookieOptions
}

type Router struct {
	principalHandlers map[entity.Role]*PrincipalHandler
	postHandler       *PostHandler
	commentHandler    *CommentHandler
	categoryHandler   *CategoryHandler
	jwtService        usecase.JWTService
	logger            usecasecontract.IAppLogger
	permissions       entity.PermissionTable
	opts              RouterOptions
}

func NewRouter(
	principalUsecases []usecasecontract.IPrincipalUseCase,
	postUsecase usecasecontract.IPostUseCase,
	commentUsecase usecasecontract.ICommentUseCase,
	categoryUsecase usecasecontract.ICategoryUseCase,
	jwtService usecase.JWTService,
	logger usecasecontract.IAppLogger,
	permissions entity.PermissionTable,
	opts RouterOptions,
) *Router {
	handlers := make(map[entity.Role]*PrincipalHandler, len(principalUsecases))
	for _, uc := range principalUsecases {
		handlers[uc.Family()] = NewPrincipalHandler(uc, opts.Cookie)
	}
	return &Router{
		principalHandlers: handlers,
		postHandler:       NewPostHandler(postUsecase),
		commentHandler:    NewCommentHandler(commentUsecase),
		categoryHandler:   NewCategoryHandler(categoryUsecase),
		jwtService:        jwtService,
		logger:            logger,
		permissions:       permissions,
		opts:              opts,
	}
}

// guard returns the middleware chain protecting perm: nothing for public
// actions, otherwise authentication followed by the permission check.
func (r *Router) guard(perm entity.Permission, h gin.HandlerFunc) []gin.HandlerFunc {
	if r.permissions.IsPublic(perm) {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{
		middleware.AuthMiddleware(r.jwtService, r.logger),
		middleware.RequirePermission(r.permissions, perm),
		h,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	origins := r.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(middleware.Recovery(r.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if r.opts.RateLimitPerSecond > 0 {
		router.Use(middleware.RateLimiter(middleware.NewLimiter(r.opts.RateLimitPerSecond)))
	}
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(func(c *gin.Context) {
		ErrorHandler(c, http.StatusNotFound, "route not found")
	})

	api := router.Group("/api")
	api.GET("/home", func(c *gin.Context) {
		MessageHandler(c, http.StatusOK, "welcome to the home page")
	})

	for _, role := range entity.Roles {
		if h, ok := r.principalHandlers[role]; ok {
			r.principalRoutes(api.Group("/"+string(role)), entity.FamilyResource(role), h)
		}
	}

	blog := api.Group("/blog")
	{
		blog.GET("", r.guard(entity.Permission{Resource: entity.ResourcePost, Action: entity.ActionList}, r.postHandler.ListPosts)...)
		blog.GET("/:id", r.guard(entity.Permission{Resource: entity.ResourcePost, Action: entity.ActionGet}, r.postHandler.GetPost)...)
		blog.PUT("/:id", r.guard(entity.Permission{Resource: entity.ResourcePost, Action: entity.ActionUpdate}, r.postHandler.UpdatePost)...)
		blog.POST("/create", r.guard(entity.Permission{Resource: entity.ResourcePost, Action: entity.ActionCreate}, r.postHandler.CreatePost)...)
		blog.DELETE("/:id", r.guard(entity.Permission{Resource: entity.ResourcePost, Action: entity.ActionDelete}, r.postHandler.DeletePost)...)
		blog.POST("/like/Or/Dislike/BlogPost", r.guard(entity.Permission{Resource: entity.ResourcePost, Action: entity.ActionReact}, r.postHandler.ToggleReaction)...)
	}

	comment := api.Group("/comment")
	{
		comment.GET("/:blogPostId/comments", r.guard(entity.Permission{Resource: entity.ResourceComment, Action: entity.ActionList}, r.commentHandler.ListComments)...)
		comment.POST("/comment/:blogId", r.guard(entity.Permission{Resource: entity.ResourceComment, Action: entity.ActionCreate}, r.commentHandler.UpsertComment)...)
		comment.PUT("/:blogId/update/:commentId", r.guard(entity.Permission{Resource: entity.ResourceComment, Action: entity.ActionUpdate}, r.commentHandler.UpdateComment)...)
		comment.DELETE("/:blogId/delete/:commentId", r.guard(entity.Permission{Resource: entity.ResourceComment, Action: entity.ActionDelete}, r.commentHandler.DeleteComment)...)
	}

	category := api.Group("/category")
	{
		category.GET("", r.guard(entity.Permission{Resource: entity.ResourceCategory, Action: entity.ActionList}, r.categoryHandler.ListCategories)...)
		category.GET("/counts", r.guard(entity.Permission{Resource: entity.ResourceCategory, Action: entity.ActionCount}, r.categoryHandler.CountCategories)...)
		category.POST("/create", r.guard(entity.Permission{Resource: entity.ResourceCategory, Action: entity.ActionCreate}, r.categoryHandler.CreateCategory)...)
		category.GET("/:id", r.guard(entity.Permission{Resource: entity.ResourceCategory, Action: entity.ActionGet}, r.categoryHandler.GetCategory)...)
		category.PUT("/:id", r.guard(entity.Permission{Resource: entity.ResourceCategory, Action: entity.ActionUpdate}, r.categoryHandler.UpdateCategory)...)
		category.DELETE("/:id", r.guard(entity.Permission{Resource: entity.ResourceCategory, Action: entity.ActionDelete}, r.categoryHandler.DeleteCategory)...)
	}
}

// principalRoutes mounts the account routes shared by every principal family.
func (r *Router) principalRoutes(g *gin.RouterGroup, res entity.Resource, h *PrincipalHandler) {
	perm := func(a entity.Action) entity.Permission {
		return entity.Permission{Resource: res, Action: a}
	}

	g.GET("", r.guard(perm(entity.ActionList), h.List)...)
	g.GET("/getProfile", r.guard(perm(entity.ActionSelf), h.GetProfile)...)
	g.GET("/counts", r.guard(perm(entity.ActionCount), h.Count)...)
	g.GET("/savedBlog/list", r.guard(perm(entity.ActionSelf), h.GetSavedPosts)...)
	g.GET("/:id", r.guard(perm(entity.ActionGet), h.GetByID)...)

	g.POST("/login", r.guard(perm(entity.ActionLogin), h.Login)...)
	g.POST("/logout", h.Logout)
	g.POST("/register", r.guard(perm(entity.ActionRegister), h.Register)...)
	g.POST("/forgotPassword", r.guard(perm(entity.ActionForgotPassword), h.ForgotPassword)...)
	g.POST("/save/remove/blogPost/fromList", r.guard(perm(entity.ActionSelf), h.ToggleSavedPost)...)

	g.PUT("/updateProfile", r.guard(perm(entity.ActionSelf), h.UpdateProfile)...)
	g.PUT("/changePassword", r.guard(perm(entity.ActionSelf), h.ChangePassword)...)
	g.PUT("/resetPassword/:tokenId", r.guard(perm(entity.ActionResetPassword), h.ResetPassword)...)
	g.PUT("/:id", r.guard(perm(entity.ActionUpdate), h.UpdateByID)...)

	g.DELETE("/:id", r.guard(perm(entity.ActionDelete), h.Delete)...)
}
