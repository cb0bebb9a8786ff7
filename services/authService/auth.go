package authService

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kimdh-hi/smtc-backend-deploy/config"
	"github.com/kimdh-hi/smtc-backend-deploy/models"
	"github.com/kimdh-hi/smtc-backend-deploy/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bearerPrefix = "Bearer "

// Caller is the identity resolved from a bearer token
type Caller struct {
	UserID   uint
	Username string
	Role     models.UserRole
}

type SignupInput struct {
	Username  string
	Password  string
	Nickname  string
	Role      models.UserRole
	Languages []string
}

var (
	callerCache     *cache.Cache
	callerCacheOnce sync.Once
)

// callers is nil when caching is disabled
func callers() *cache.Cache {
	callerCacheOnce.Do(func() {
		callerCache = newCallerCache(config.Get().CallerCacheTTLSeconds)
	})
	return callerCache
}

// newCallerCache returns nil for a non-positive TTL, since go-cache reads 0 as never expire
func newCallerCache(ttlSeconds int) *cache.Cache {
	if ttlSeconds <= 0 {
		return nil
	}
	ttl := time.Duration(ttlSeconds) * time.Second
	return cache.New(ttl, 2*ttl)
}

// Signup stores a new user with a bcrypt hashed password
func Signup(db *gorm.DB, in SignupInput) (*models.User, error) {
	if in.Role == "" {
		in.Role = models.RoleUser
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", in.Username).Count(&count).Error; err != nil {
		return nil, utils.Internal("Failed to check username!", err)
	}
	if count > 0 {
		return nil, utils.NewConflict("Username is already registered!")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), config.Get().SaltRound)
	if err != nil {
		return nil, utils.Internal("Failed to process your request!", err)
	}

	user := models.User{
		Username: in.Username,
		Password: string(hashed),
		Nickname: in.Nickname,
		Role:     in.Role,
	}
	if user.IsReviewer() {
		for _, name := range in.Languages {
			user.Languages = append(user.Languages, models.Language{Name: strings.TrimSpace(name)})
		}
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, utils.Internal("Failed to signup user!", err)
	}
	return &user, nil
}

// Login checks the credentials and issues a token
func Login(db *gorm.DB, username, password string) (string, *models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, utils.NewUnauthorized("Invalid credentials!")
		}
		return "", nil, utils.Internal("Failed to load user!", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, utils.NewUnauthorized("Invalid credentials!")
	}

	token, err := IssueToken(user)
	if err != nil {
		return "", nil, utils.Internal("Failed to create token!", err)
	}
	return token, &user, nil
}

// IssueToken signs an HS256 token for the user
func IssueToken(user models.User) (string, error) {
	cfg := config.Get()
	now := time.Now()
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"jti":      uuid.NewString(),
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(cfg.JWTExpireHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTKey))
}

// ResolveCaller verifies an Authorization header value and loads the caller
func ResolveCaller(db *gorm.DB, authHeader string) (Caller, error) {
	if authHeader == "" {
		return Caller{}, utils.NewUnauthorized("Missing or invalid Authorization header")
	}
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return Caller{}, utils.NewUnauthorized("Invalid Authorization header format")
	}
	tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Get().JWTKey), nil
	})
	if err != nil || !token.Valid {
		return Caller{}, utils.NewUnauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Caller{}, utils.NewUnauthorized("Invalid token payload")
	}
	// JWT numbers decode as float64
	rawID, ok := claims["userId"].(float64)
	if !ok || rawID < 1 {
		return Caller{}, utils.NewUnauthorized("Invalid token payload")
	}

	return LookupCaller(db, uint(rawID))
}

// LookupCaller resolves a user id to a Caller, going through the cache first
func LookupCaller(db *gorm.DB, userID uint) (Caller, error) {
	if userID == 0 {
		return Caller{}, utils.NewUnauthorized("Unauthorized!")
	}

	return lookupCaller(db, callers(), userID)
}

func lookupCaller(db *gorm.DB, c *cache.Cache, userID uint) (Caller, error) {
	key := fmt.Sprintf("user:%d", userID)
	if c != nil {
		if cached, found := c.Get(key); found {
			return cached.(Caller), nil
		}
	}

	var user models.User
	if err := db.Select("id", "username", "role").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Caller{}, utils.NewUnauthorized("User not found!")
		}
		return Caller{}, utils.Internal("Failed to resolve caller!", err)
	}

	caller := Caller{UserID: user.ID, Username: user.Username, Role: user.Role}
	if c != nil {
		c.SetDefault(key, caller)
	}
	return caller, nil
}

// ForgetCaller evicts a cached identity, used after role or profile changes
func ForgetCaller(userID uint) {
	if c := callers(); c != nil {
		c.Delete(fmt.Sprintf("user:%d", userID))
	}
}

// FlushCallers drops every cached identity
func FlushCallers() {
	if c := callers(); c != nil {
		c.Flush()
	}
}
