package delivery

import (
	"net/http"
	"strconv"
	"time"

	"planner-backend/internal/calendar"
	"planner-backend/internal/note/usecase"
	"planner-backend/pkg/datekey"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles calendar note HTTP requests
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
}

// NewNoteHandler creates a new NoteHandler
func NewNoteHandler(noteUsecase usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{
		noteUsecase: noteUsecase,
	}
}

type saveNoteRequest struct {
	Note string `json:"note"`
}

// GetNote returns the note text for one day, "" when the day has none
// GET /api/notes/:date
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID := c.GetString("userID")

	day, err := datekey.Parse(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	note, err := h.noteUsecase.GetNote(userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "note": note})
}

// SaveNote stores a day's note; whitespace-only text deletes it
// PUT /api/notes/:date
func (h *NoteHandler) SaveNote(c *gin.Context) {
	userID := c.GetString("userID")

	day, err := datekey.Parse(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var req saveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.noteUsecase.SaveNote(userID, day, req.Note); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "note": req.Note})
}

// GetCalendar returns the month grid with the user's notes attached.
// Month defaults to the current month; month is 0-11.
// GET /api/calendar?month=&year=
func (h *NoteHandler) GetCalendar(c *gin.Context) {
	userID := c.GetString("userID")
	now := time.Now()

	month := int(now.Month()) - 1
	year := now.Year()

	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 0 || m > 11 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 0-11"})
			return
		}
		month = m
	}
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
			return
		}
		year = y
	}

	notes, err := h.noteUsecase.NotesByDay(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, calendar.Build(month, year, notes, now))
}
