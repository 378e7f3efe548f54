package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/shoplite-api/internal/core/ports"
	"github.com/shoplite/shoplite-api/internal/core/service"
)

type ImageHandler struct {
	service ports.ImageService
}

func NewImageHandler(imageService ports.ImageService) *ImageHandler {
	return &ImageHandler{service: imageService}
}

type uploadImageResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Path    string `json:"path"`
}

// Upload handles POST /images (admin): multipart form field "image".
//
// @Summary      Upload a product image
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file (jpg, jpeg, png, webp, gif)"
// @Success      201    {object}  uploadImageResponse
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /images [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	if fh.Size > service.MaxImageSize {
		return echo.NewHTTPError(http.StatusBadRequest, "image is too large")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image file")
	}
	defer src.Close()

	name, err := h.service.Upload(c.Request().Context(), fh.Filename, fh.Size, src)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, uploadImageResponse{
		Message: "image uploaded",
		Name:    name,
		Path:    "/uploads/" + name,
	})
}

// Delete handles DELETE /images/:name (admin).
//
// @Summary      Delete a product image
// @Tags         images
// @Produce      json
// @Security     BearerAuth
// @Param        name  path  string  true  "Stored image name"
// @Success      204   "No Content"
// @Failure      404   {object}  errorResponse
// @Router       /images/{name} [delete]
func (h *ImageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
