package users

import (
	"errors"
	"net/http"
	"strconv"

	"user-api/internal/api"
	"user-api/internal/model"
	"user-api/internal/service"
	"user-api/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	msgUserNotFound    = "User not found"
	msgUserDeleted     = "User deleted"
	msgInvalidPayload  = "invalid request body"
	msgPasswordTooLong = "password too long"
)

var hashPassword = service.HashPassword

// @Summary     List users
// @Description 回傳所有使用者，依建立順序排列
// @Tags        users
// @Produce     json
// @Success     200  {array}   api.UserResponse
// @Failure     500  {object}  api.MessageResponse  "伺服器錯誤"
// @Router      /users [get]
func ListUsersHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := s.All(c.Request().Context())
		if err != nil {
			return err
		}
		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者詳細資料
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200  {object}  api.UserResponse
// @Failure     404  {object}  api.MessageResponse  "使用者不存在"
// @Failure     500  {object}  api.MessageResponse  "伺服器錯誤"
// @Router      /users/{id} [get]
func GetUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseUserID(c)
		if !ok {
			return userNotFound(c)
		}
		user, err := s.Find(c.Request().Context(), id)
		if errors.Is(err, store.ErrUserNotFound) {
			return userNotFound(c)
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Create a new user
// @Description 建立新使用者，密碼以 bcrypt 儲存且不會回傳
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body  body      api.CreateUserRequest  true  "使用者資料"
// @Success     201   {object}  api.UserResponse
// @Failure     400   {object}  api.MessageResponse
// @Failure     500   {object}  api.MessageResponse
// @Router      /users [post]
func CreateUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgInvalidPayload})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return passwordError(c, err)
		}

		user, err := s.Create(c.Request().Context(), &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			IsCustomer:   req.IsCustomer,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// @Summary     Update a user by ID
// @Description 部分更新使用者，未帶入的欄位維持原值
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id    path      int                    true  "使用者 ID"
// @Param       body  body      api.UpdateUserRequest  true  "要更新的欄位"
// @Success     200   {object}  api.UserResponse
// @Failure     400   {object}  api.MessageResponse
// @Failure     404   {object}  api.MessageResponse
// @Failure     500   {object}  api.MessageResponse
// @Router      /users/{id} [put]
func UpdateUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseUserID(c)
		if !ok {
			return userNotFound(c)
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgInvalidPayload})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.MessageResponse{Message: err.Error()})
		}

		changes := model.UserChanges{
			Name:       req.Name,
			Email:      req.Email,
			IsCustomer: req.IsCustomer,
		}
		if req.Password != nil {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return passwordError(c, err)
			}
			changes.PasswordHash = &hash
		}

		user, err := s.Update(c.Request().Context(), id, changes)
		if errors.Is(err, store.ErrUserNotFound) {
			return userNotFound(c)
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除使用者帳號
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200  {object}  api.MessageResponse
// @Failure     404  {object}  api.MessageResponse  "使用者不存在"
// @Failure     500  {object}  api.MessageResponse  "伺服器錯誤"
// @Router      /users/{id} [delete]
func DeleteUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseUserID(c)
		if !ok {
			return userNotFound(c)
		}
		deleted, err := s.Delete(c.Request().Context(), id)
		if err != nil {
			return err
		}
		if !deleted {
			return userNotFound(c)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: msgUserDeleted})
	}
}

// parseUserID 只接受 users.id (int4) 範圍內的正整數；其他值不可能對應到任何資料列
func parseUserID(c echo.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int(id), true
}

func userNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, api.MessageResponse{Message: msgUserNotFound})
}

// passwordError 超過 bcrypt 72 bytes 上限屬於輸入錯誤，其餘交給 ErrorHandler
func passwordError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrPasswordTooLong) {
		return c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgPasswordTooLong})
	}
	return err
}
