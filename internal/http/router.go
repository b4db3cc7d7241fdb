package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/RAGHAVAN7777/vault-backend/internal/http/handlers"
)

// BuildRouter wires the REST surface
func BuildRouter(
	ah *handlers.AuthHandlers,
	ch *handlers.ContentHandlers,
	nh *handlers.NoteHandlers,
	ach *handlers.AccountHandlers,
	adh *handlers.AdminHandlers,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	// Auth flows
	api.POST("/send-otp", ah.SendOTP)
	api.POST("/verify-otp", ah.VerifyOTP)
	api.POST("/send-master-otp", ah.SendMasterOTP)
	api.POST("/verify-master-otp", ah.VerifyMasterOTP)
	api.POST("/register", ah.Register)
	api.POST("/login", ah.Login)
	api.POST("/admin-login-pattern", ah.PatternLogin)
	api.POST("/recover/send-otp", ah.SendRecoveryOTP)
	api.POST("/recover/verify-otp", ah.VerifyRecoveryOTP)
	api.POST("/recover/reset-pin", ah.ResetPIN)

	// Content lifecycle
	api.POST("/upload", ch.Upload)
	api.DELETE("/files/:id", ch.Delete)
	api.GET("/files/:userId", ch.List)
	api.GET("/user/:userId", ch.Usage)

	// Notebooks
	api.GET("/notes/:userId", nh.List)
	api.POST("/notes", nh.Create)
	api.PUT("/notes/:noteId", nh.Update)
	api.DELETE("/notes/:noteId", nh.Delete)

	// Bulk destruction
	api.POST("/purge-all/:userId", ach.PurgeContent)
	api.POST("/request-purge-account-otp/:userId", ach.RequestPurgeOTP)
	api.POST("/purge-account/:userId", ach.PurgeAccount)

	// Operator dashboard
	adm := api.Group("/admin")
	adm.GET("/stats", adh.Stats)
	adm.GET("/users", adh.Users)
	adm.POST("/purge-user-content/:userId", adh.PurgeUserContent)
	adm.POST("/delete-user/:userId", adh.DeleteUser)

	return r
}
