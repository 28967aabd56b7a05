package handlers

import (
	"log"
	"net/http"

	"revolux/internal/usecase"
	"revolux/pkg"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 20 << 20

var errMissingFile = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing multipart field 'file'", http.StatusBadRequest)

// UploadHandler receives spreadsheets for analysis.
type UploadHandler struct {
	usecase usecase.IUploadUseCase
}

func NewUploadHandler(uc usecase.IUploadUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// CreateUpload godoc
// @Summary      Upload a CSV for analysis
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file"
// @Success      201   {object}  entities.Upload
// @Failure      400   {object}  pkg.HTTPError
// @Router       /uploads [post]
func (h *UploadHandler) CreateUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	actor := actorFrom(c)
	log.Printf("[upload][handler] create start owner=%s file=%s size=%d", actor.Email, fh.Filename, fh.Size)
	up, err := h.usecase.Analyze(c.Request.Context(), actor, fh.Filename, fh.Size, f)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, up)
}

// ListUploads godoc
// @Summary      Uploads of the caller
// @Tags         uploads
// @Produce      json
// @Success      200  {array}  entities.Upload
// @Router       /uploads [get]
func (h *UploadHandler) ListUploads(c *gin.Context) {
	uploads, err := h.usecase.ListByOwner(c.Request.Context(), actorFrom(c).Email)
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, uploads)
}

// GetUpload godoc
// @Summary      Get an upload
// @Tags         uploads
// @Produce      json
// @Param        id   path      string  true  "upload id"
// @Success      200  {object}  entities.Upload
// @Failure      404  {object}  pkg.HTTPError
// @Router       /uploads/{id} [get]
func (h *UploadHandler) GetUpload(c *gin.Context) {
	up, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if up.OwnerEmail != actorFrom(c).Email {
		appErr := mapUploadError(usecase.ErrUploadNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, up)
}
