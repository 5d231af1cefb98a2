package users

import (
	"user-api/internal/store"

	"github.com/labstack/echo/v4"
)

// Register 將 users CRUD 掛到指定群組
func Register(g *echo.Group, s store.UserStore) {
	users := g.Group("/users")
	users.GET("", ListUsersHandler(s))
	users.POST("", CreateUserHandler(s))
	users.GET("/:id", GetUserHandler(s))
	users.PUT("/:id", UpdateUserHandler(s))
	users.DELETE("/:id", DeleteUserHandler(s))
}
