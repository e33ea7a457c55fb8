package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/LarzzCode/LarGarage/board"
	"github.com/LarzzCode/LarGarage/importer"
	"github.com/LarzzCode/LarGarage/models"
	"github.com/LarzzCode/LarGarage/repository"
	"github.com/LarzzCode/LarGarage/services"
	"github.com/LarzzCode/LarGarage/utils"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrInvalidID          = &CustomError{"ID tidak valid"}
	ErrInvalidCredentials = &CustomError{"Email atau password salah"}
	ErrSaveFailed         = &CustomError{"Gagal menyimpan data!"}
	ErrImportFailed       = &CustomError{"Gagal import Excel. Cek format data."}
	ErrFileRequired       = &CustomError{"File Excel wajib diupload"}
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, board.ErrUnknownBucket),
		errors.Is(err, board.ErrInvalidPosition),
		errors.Is(err, importer.ErrEmptySheet),
		errors.Is(err, services.ErrNoPhone),
		errors.Is(err, services.ErrFeeNameRequired),
		errors.Is(err, services.ErrFeePriceRequired):
		return http.StatusBadRequest
	case errors.Is(err, board.ErrRemoteUpdate):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondDomainError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	utils.RespondError(c, code, err)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}
