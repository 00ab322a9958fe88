package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/server/dto"
	"github.com/dmitrijs2005/exercisetracker/internal/server/logfilter"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/services"
	"github.com/gin-gonic/gin"
)

// UserService is the part of services.UserService the API needs.
type UserService interface {
	CreateUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ClearAll(ctx context.Context) (int64, error)
}

// LogService is the part of services.LogService the API needs.
type LogService interface {
	AddLogEntry(ctx context.Context, userID, description, rawDuration, rawDate string) (*models.User, *models.LogEntry, error)
	GetLog(ctx context.Context, userID string, q logfilter.Query) (*services.LogQueryResult, error)
	Export(ctx context.Context, userID string, q logfilter.Query) (string, string, error)
}

// rawValue binds a form value or a JSON string or number as its text.
type rawValue string

// UnmarshalParam implements binding.BindUnmarshaler for form bodies.
func (r *rawValue) UnmarshalParam(param string) error {
	*r = rawValue(param)
	return nil
}

func (r *rawValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = rawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected a string or a number, got %s", b)
	}
	*r = rawValue(n.String())
	return nil
}

type createUserRequest struct {
	UserName string `form:"username" json:"username" binding:"required"`
}

type addExerciseRequest struct {
	Description string   `form:"description" json:"description"`
	Duration    rawValue `form:"duration" json:"duration"`
	Date        rawValue `form:"date" json:"date"`
}

type handler struct {
	users UserService
	logs  LogService
	ready func(context.Context) error
}

func (h *handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, fmt.Errorf("%w: username is required", common.ErrorValidation))
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.UserName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user.ID, user.UserName))
}

func (h *handler) listUsers(c *gin.Context) {
	list, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserList(list))
}

// getUser answers with the user's complete, unfiltered log.
func (h *handler) getUser(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.Param("_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLogResponse(user, user.Log.Entries()))
}

func (h *handler) addExercise(c *gin.Context) {
	var req addExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %v", common.ErrorValidation, err))
		return
	}

	user, entry, err := h.logs.AddLogEntry(c.Request.Context(), c.Param("_id"), req.Description, string(req.Duration), string(req.Date))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEntryResponse(user, entry))
}

func queryFromRequest(c *gin.Context) logfilter.Query {
	return logfilter.ParseQuery(c.Query("from"), c.Query("to"), c.Query("limit"))
}

func (h *handler) getLog(c *gin.Context) {
	res, err := h.logs.GetLog(c.Request.Context(), c.Param("_id"), queryFromRequest(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLogResponse(res.User, res.Entries))
}

func (h *handler) exportLog(c *gin.Context) {
	key, url, err := h.logs.Export(c.Request.Context(), c.Param("_id"), queryFromRequest(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{Key: key, URL: url})
}

func (h *handler) clear(c *gin.Context) {
	n, err := h.users.ClearAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, fmt.Sprintf("Database cleared with %d entries deleted.", n))
}

func (h *handler) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) readyz(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// trimID rejects blank ids early; every other id is left to the store.
func trimID(c *gin.Context) {
	if strings.TrimSpace(c.Param("_id")) == "" {
		writeError(c, common.ErrorNotFound)
		return
	}
	c.Next()
}
