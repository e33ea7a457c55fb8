package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/board"
	"github.com/LarzzCode/LarGarage/metrics"
	"github.com/LarzzCode/LarGarage/services"
	"github.com/LarzzCode/LarGarage/utils"
)

type BoardController struct {
	*Workshop
}

func NewBoardController(w *Workshop) *BoardController {
	return &BoardController{Workshop: w}
}

// GetBoard -> tiga kolom status, ?q= menyaring per kolom
func (bc *BoardController) GetBoard(c *gin.Context) {
	columns := bc.Board.Columns()
	if q := c.Query("q"); q != "" {
		for i := range columns {
			columns[i].Items = services.FilterServices(columns[i].Items, q)
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Board", gin.H{
		"columns":     columns,
		"transitions": bc.Board.Transitions(),
	})
}

func (bc *BoardController) MoveCard(c *gin.Context) {
	var drag board.DragResult
	if err := c.ShouldBindJSON(&drag); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	out, err := bc.Board.Move(c.Request.Context(), drag)
	if out.Phase != "" {
		metrics.ObserveBoardMove(string(out.Phase))
	}
	if err != nil {
		if errors.Is(err, board.ErrRemoteUpdate) {
			utils.ErrorLogger.Printf("Board move service %d: %v", out.ServiceID, err)
			bc.Hub.BroadcastBoardUpdate(out.Columns)
			utils.RespondErrorData(c, http.StatusBadGateway, errors.New(board.MsgMoveFailed), out)
			return
		}
		respondDomainError(c, err)
		return
	}

	if out.Phase == board.PhaseReordered {
		bc.Hub.BroadcastBoardUpdate(out.Columns)
	}
	utils.RespondJSON(c, http.StatusOK, "Board updated", out)
}

// ReloadBoard membuang urutan lokal dan membaca ulang dari database
func (bc *BoardController) ReloadBoard(c *gin.Context) {
	if err := bc.RefreshBoard(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Board reloaded", bc.Board.Columns())
}
