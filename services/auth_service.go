package services

import (
	"os"
	"time"

	"hms/constants"
	"hms/errors"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// AdminLogin kiểm tra thông tin đăng nhập admin với tài khoản cấu hình
// trong biến môi trường (ADMIN_USERNAME + ADMIN_PASSWORD_HASH dạng bcrypt)
// và trả về JWT nếu hợp lệ
func AdminLogin(username, password string) (string, int, error) {
	adminUser := os.Getenv("ADMIN_USERNAME")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")

	if adminUser == "" || adminHash == "" {
		return "", 0, errors.NewAppError(errors.ErrCodeUnauthorized, "Tài khoản admin chưa được cấu hình", nil)
	}

	if username != adminUser {
		return "", 0, errors.NewAppError(errors.ErrCodeUnauthorized, "Sai thông tin đăng nhập", errors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(password)); err != nil {
		return "", 0, errors.NewAppError(errors.ErrCodeInvalidPassword, "Sai thông tin đăng nhập", errors.ErrInvalidPassword)
	}

	token, err := CreateToken(1, constants.RoleAdmin)
	if err != nil {
		return "", 0, err
	}
	return token, constants.RoleAdmin, nil
}

// CreateToken tạo JWT chứa userid và role, hết hạn sau 24h
func CreateToken(userID uint, role int) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{
			UserId: userID,
			Role:   role,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidToken, "Không tạo được token", err)
	}
	return signed, nil
}

// GetUserIDFromToken xác thực token và lấy userID + role từ claims
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}

	return claims.UserInfo.UserId, claims.UserInfo.Role, nil
}
