package api

import (
	"time"

	"github.com/sosw-app/sosw/internal/db"
	"github.com/sosw-app/sosw/internal/models"
	"github.com/sosw-app/sosw/internal/push"
	"github.com/sosw-app/sosw/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey     []byte
	location      *time.Location
	authService   *services.AuthService
	reportService *services.ReportService
	uploadService *services.UploadService
	pushSender    push.Sender
}

type signUpPayload struct {
	Email       string `json:"email" form:"email"`
	FullName    string `json:"full_name" form:"full_name"`
	Gender      string `json:"gender" form:"gender"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth"`
	FcmToken    string `json:"fcm_token" form:"fcm_token"`
	Password    string `json:"password" form:"password"`
}

type signInPayload struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type fcmTokenPayload struct {
	FcmToken string `json:"fcm_token" form:"fcm_token"`
}

type selfReportPayload struct {
	Timestamp     int64  `json:"timestamp" form:"timestamp"`
	StressLevel   *int   `json:"stress_level" form:"stress_level"`
	Valence       *int   `json:"valence" form:"valence"`
	Arousal       *int   `json:"arousal" form:"arousal"`
	Activity      string `json:"activity" form:"activity"`
	Location      string `json:"location" form:"location"`
	SocialContext string `json:"social_context" form:"social_context"`
	Voluntary     *bool  `json:"voluntary" form:"voluntary"`
}

type emaPushPayload struct {
	UserID uint `json:"user_id" form:"user_id"`
}

// userResponse is the public representation of an account. The password
// hash never leaves the server.
type userResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	FcmToken    string `json:"fcm_token,omitempty"`
	Role        string `json:"role"`
}

const authTokenTTL = 30 * 24 * time.Hour

func NewHandler(database *gorm.DB, secret string, dumpDir string, location *time.Location, sender push.Sender) *Handler {
	if location == nil {
		location = time.Local
	}
	repositories := db.NewRepositories(database)

	return &Handler{
		secretKey:     []byte(secret),
		location:      location,
		authService:   services.NewAuthService(repositories.Users),
		reportService: services.NewReportService(repositories.SelfReports, repositories.SelfReportLogs),
		uploadService: services.NewUploadService(dumpDir),
		pushSender:    sender,
	}
}

func publicUser(user models.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Gender:      user.Gender,
		DateOfBirth: user.DateOfBirth.Format("20060102"),
		FcmToken:    user.FcmToken,
		Role:        user.Role,
	}
}
