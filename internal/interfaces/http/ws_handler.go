package http

import (
	"errors"

	"github.com/evanfuller/learntrack/internal/progress"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

type progressFeedRequest struct {
	CourseID string `json:"course_id"`
}

type progressFeedReply struct {
	CourseID string                 `json:"course_id"`
	Summary  *progress.SummaryModel `json:"summary,omitempty"`
	Warning  string                 `json:"warning,omitempty"`
}

// HandleProgressFeed reply with the current completion summary for every
// course id the client sends. Runs behind the JWT middleware, the identity
// comes from the verified token
func (ch *CourseHandler) HandleProgressFeed(conn *websocket.Conn, c echo.Context) error {
	claims := ch.jwtUtil.GetContextToken(c)

	req := new(progressFeedRequest)
	if err := conn.ReadJSON(req); err != nil {
		return err
	}

	reply := &progressFeedReply{CourseID: req.CourseID}
	view, err := ch.progressUseCase.LoadProgress(c.Request().Context(), claims.UID, req.CourseID)
	if err != nil && !errors.Is(err, progress.ErrProgressUnavailable) {
		return err
	}
	if err != nil {
		reply.Warning = err.Error()
	}
	if view != nil {
		reply.Summary = view.Summary()
	} else {
		reply.Warning = "Course not found"
	}
	return conn.WriteJSON(reply)
}
