package authController

import (
	"github.com/kimdh-hi/smtc-backend-deploy/database"
	"github.com/kimdh-hi/smtc-backend-deploy/middleware"
	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/services/authService"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"
	authValidator "github.com/kimdh-hi/smtc-backend-deploy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	role := models.RoleUser
	if reqData.Role != "" {
		role, _ = models.ParseUserRole(reqData.Role)
	}

	user, err := authService.Signup(database.Database.Db.WithContext(c.UserContext()), authService.SignupInput{
		Username:  reqData.Username,
		Password:  reqData.Password,
		Nickname:  reqData.Nickname,
		Role:      role,
		Languages: reqData.Languages,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	utils.Log.WithUserID(user.ID).WithField("role", user.Role).Info("user registered")
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"id":        user.ID,
		"username":  user.Username,
		"nickname":  user.Nickname,
		"role":      user.Role,
		"languages": user.LanguageNames(),
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, user, err := authService.Login(database.Database.Db.WithContext(c.UserContext()), reqData.Username, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":    token,
		"username": user.Username,
		"nickname": user.Nickname,
		"role":     user.Role,
	})
}
