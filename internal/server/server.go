// Package server exposes the HTTP surface: manual trigger, debug
// inspection and test-send endpoints. No reminder logic lives here.
package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ArthurHoang15/notification-server/internal/domain"
	"github.com/ArthurHoang15/notification-server/internal/i18n"
	"github.com/ArthurHoang15/notification-server/internal/metrics"
	"github.com/ArthurHoang15/notification-server/internal/push"
	"github.com/ArthurHoang15/notification-server/internal/store"
	"github.com/ArthurHoang15/notification-server/internal/sweep"
)

type Server struct {
	repo       store.Repo
	sweeper    *sweep.Sweeper
	dispatcher *push.Dispatcher
	log        *zap.Logger
}

// New builds the gin engine with all routes registered.
func New(repo store.Repo, sweeper *sweep.Sweeper, dispatcher *push.Dispatcher, log *zap.Logger) *gin.Engine {
	s := &Server{repo: repo, sweeper: sweeper, dispatcher: dispatcher, log: log}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), metricsMiddleware)

	r.GET("/", s.root)
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/trigger", s.trigger)
	r.GET("/debug", s.debug)
	r.GET("/debug-time", s.debugTime)
	r.POST("/force-send", s.forceSend)
	r.POST("/test", s.testSend)
	r.POST("/send", s.send)

	return r
}

func metricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	labels := prometheus.Labels{
		"method": c.Request.Method,
		"path":   c.FullPath(),
		"status": strconv.Itoa(c.Writer.Status()),
	}
	metrics.HTTPRequestsTotal.With(labels).Inc()
	metrics.HTTPRequestDuration.With(labels).Observe(time.Since(start).Seconds())
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "SafeMed Notification Server",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) trigger(c *gin.Context) {
	s.log.Info("manual sweep trigger")
	sum, err := s.sweeper.Sweep(c.Request.Context())
	if errors.Is(err, sweep.ErrSweepInProgress) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Reminder check triggered",
		"checked": sum.Checked,
		"sent":    sum.Sent,
	})
}

func (s *Server) debug(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	type userInfo struct {
		UserID    string            `json:"userId"`
		FCMToken  string            `json:"fcm_token"`
		Language  domain.Language   `json:"language"`
		Reminders []domain.Reminder `json:"reminders"`
	}

	out := make([]userInfo, 0, len(users))
	for _, u := range users {
		token := "MISSING"
		if u.HasToken() {
			token = "EXISTS"
		}
		rems, err := s.repo.ListReminders(ctx, u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		out = append(out, userInfo{
			UserID:    u.ID,
			FCMToken:  token,
			Language:  u.Language,
			Reminders: rems,
		})
	}
	c.JSON(http.StatusOK, gin.H{"totalUsers": len(users), "users": out})
}

func (s *Server) debugTime(c *gin.Context) {
	tz := c.DefaultQuery("tz", "Asia/Bangkok")
	lt, _ := domain.ResolveLocal(time.Now(), tz)
	c.JSON(http.StatusOK, gin.H{
		"serverUTC": time.Now().UTC().Format(time.RFC3339),
		"timezone":  tz,
		"localTime": lt.HHMM(),
		"dayOfWeek": lt.DayOfWeek,
		"dayName":   lt.DayName,
	})
}

func (s *Server) forceSend(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId required"})
		return
	}

	user, err := s.repo.GetUser(c.Request.Context(), req.UserID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !user.HasToken() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No FCM token"})
		return
	}

	title, body := i18n.Compose(user.Language, domain.SlotEvening, false, "", "")
	res := s.dispatcher.Send(c.Request.Context(), user.PushToken, title, body, push.Meta{
		ReminderID: "test",
		TimeSlot:   "evening",
	})
	c.JSON(http.StatusOK, resultJSON(res))
}

func (s *Server) testSend(c *gin.Context) {
	var req struct {
		FCMToken string `json:"fcmToken"`
		UserID   string `json:"userId"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := req.FCMToken
	if token == "" && req.UserID != "" {
		if user, err := s.repo.GetUser(c.Request.Context(), req.UserID); err == nil {
			token = user.PushToken
		}
	}
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fcmToken or userId required"})
		return
	}

	res := s.dispatcher.Send(c.Request.Context(), token, "💊 Test", "Server hoạt động bình thường!", push.Meta{
		ReminderID: "test",
		TimeSlot:   "test",
	})
	c.JSON(http.StatusOK, resultJSON(res))
}

func (s *Server) send(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
		Title  string `json:"title"`
		Body   string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId required"})
		return
	}

	user, err := s.repo.GetUser(c.Request.Context(), req.UserID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !user.HasToken() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No FCM token"})
		return
	}

	title := req.Title
	if title == "" {
		title = "💊 SafeMed"
	}
	body := req.Body
	if body == "" {
		body = "Notification from SafeMed"
	}
	res := s.dispatcher.Send(c.Request.Context(), user.PushToken, title, body, push.Meta{})
	c.JSON(http.StatusOK, resultJSON(res))
}

func resultJSON(res push.Result) gin.H {
	if res.Success {
		return gin.H{"success": true, "messageId": res.MessageID}
	}
	return gin.H{"success": false, "error": res.Err.Error()}
}
