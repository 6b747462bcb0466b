// Package http provides http transport for the publish path
package http

import (
	"errors"
	"io"
	"mime/multipart"
	stdhttp "net/http"
	"path/filepath"
	"strconv"
	"strings"

	perr "lettings/internal/platform/errors"
	phttp "lettings/internal/platform/net/http"
	"lettings/internal/platform/store/cloudinary"
	"lettings/internal/services/admin/domain"
	svc "lettings/internal/services/admin/service"
)

// maxPosterBytes caps the multipart form, image part included
const maxPosterBytes = 10 << 20

// Register mounts the publish endpoints on the given router.
// The guard wraps the mutating route only; pass nil to mount unguarded.
func Register(r phttp.Router, s svc.Service, guard func(stdhttp.Handler) stdhttp.Handler) {
	h := &handlers{svc: s}

	publish := stdhttp.Handler(phttp.Handle(h.publish))
	if guard != nil {
		publish = guard(publish)
	}

	r.Post("/listings", publish.ServeHTTP)
	r.Get("/table", phttp.Handle(h.table))
}

type handlers struct{ svc svc.Service }

// swagger:route POST /listings Listings publishListing
// @Summary Publish a new listing
// @Tags Listings
// @Accept mpfd
// @Produce json
// @Param title formData string true "Listing title"
// @Param region formData string true "London region"
// @Param price formData int true "Monthly price in GBP"
// @Param description formData string false "Free-text description"
// @Param rooms formData string false "Rooms label, e.g. 2-bed"
// @Param image formData file true "Poster image (jpg or png)"
// @Success 201 {object} domain.PublishInput "created listing"
// @Router /listings [post]
func (h *handlers) publish(r *stdhttp.Request) phttp.Response {
	in, err := parsePublishForm(r)
	if err != nil {
		return phttp.Error(err)
	}
	l, err := h.svc.Publish(r.Context(), in)
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.Created(l)
}

// swagger:route GET /table Listings adminTable
// @Summary Raw sheet for the admin table view
// @Tags Listings
// @Produce json
// @Success 200 {object} any "header and rows"
// @Router /table [get]
func (h *handlers) table(r *stdhttp.Request) phttp.Response {
	t, err := h.svc.Table(r.Context())
	if err != nil {
		return phttp.Error(err)
	}
	return phttp.OK(t)
}

func parsePublishForm(r *stdhttp.Request) (domain.PublishInput, error) {
	var in domain.PublishInput

	if err := r.ParseMultipartForm(maxPosterBytes); err != nil {
		return in, perr.Wrap(err, perr.ErrorCodeValidation, "parse multipart form")
	}

	in.Title = strings.TrimSpace(r.FormValue("title"))
	in.Region = strings.TrimSpace(r.FormValue("region"))
	in.Description = strings.TrimSpace(r.FormValue("description"))
	in.Rooms = strings.TrimSpace(r.FormValue("rooms"))

	if v := strings.TrimSpace(r.FormValue("price")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return in, perr.WithField(perr.Validationf("price must be a whole number"), "price")
		}
		in.Price = p
	}

	file, hdr, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, stdhttp.ErrMissingFile) {
			// validator reports the missing image with the rest of the form
			return in, nil
		}
		return in, perr.Wrap(err, perr.ErrorCodeValidation, "read image part")
	}
	defer file.Close()

	kind, err := posterKind(hdr)
	if err != nil {
		return in, err
	}

	data, err := io.ReadAll(io.LimitReader(file, maxPosterBytes+1))
	if err != nil {
		return in, perr.Wrap(err, perr.ErrorCodeValidation, "read image bytes")
	}
	if len(data) > maxPosterBytes {
		return in, perr.WithField(perr.Validationf("image exceeds the 10MB limit"), "image")
	}

	in.Image = data
	in.ImageKind = kind
	return in, nil
}

func posterKind(hdr *multipart.FileHeader) (cloudinary.Kind, error) {
	switch strings.ToLower(hdr.Header.Get("Content-Type")) {
	case "image/jpeg", "image/jpg":
		return cloudinary.KindJPG, nil
	case "image/png":
		return cloudinary.KindPNG, nil
	}
	// some clients send application/octet-stream; fall back to the filename
	switch strings.ToLower(filepath.Ext(hdr.Filename)) {
	case ".jpg", ".jpeg":
		return cloudinary.KindJPG, nil
	case ".png":
		return cloudinary.KindPNG, nil
	}
	return "", perr.WithField(perr.Validationf("image must be a jpg or png"), "image")
}
