package fieldphoto

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openfield/field-booking-backend/internal/field"
	"github.com/openfield/field-booking-backend/internal/pkg/storage"
	"github.com/openfield/field-booking-backend/internal/venue"
)

// maxUploadSize caps field photo uploads at 10 MiB.
const maxUploadSize = 10 << 20

// Thumbnail bounding box. Field photos are wide pitch shots, so gallery
// cards use a 16:9 box.
const (
	thumbMaxWidth  = 640
	thumbMaxHeight = 360
)

// UploadInput carries everything needed to attach a photo to a field.
type UploadInput struct {
	FieldID    string
	ActorID    string
	IsSysAdmin bool
	Caption    string
	FileHeader *multipart.FileHeader
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*Photo, error)
	ListByField(ctx context.Context, fieldID string) ([]*Photo, error)
	Delete(ctx context.Context, id, actorID string, isSysAdmin bool) error
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
}

type service struct {
	repo         Repository
	fieldService field.Service
	venueService venue.Service
	storage      storage.Storage
	imgProc      *storage.ImageProcessor
}

func NewService(repo Repository, fieldService field.Service, venueService venue.Service, store storage.Storage) Service {
	return &service{
		repo:         repo,
		fieldService: fieldService,
		venueService: venueService,
		storage:      store,
		imgProc:      storage.NewImageProcessor(),
	}
}

// canManageField checks whether the actor owns the venue the field belongs to.
func (s *service) canManageField(ctx context.Context, fieldID, actorID string, isSysAdmin bool) error {
	f, err := s.fieldService.GetByID(ctx, fieldID)
	if err != nil {
		return err
	}
	if isSysAdmin {
		return nil
	}
	isOwner, err := s.venueService.IsOwner(ctx, f.VenueID, actorID)
	if err != nil {
		return err
	}
	if !isOwner {
		return venue.ErrPermissionDenied
	}
	return nil
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*Photo, error) {
	if err := s.canManageField(ctx, in.FieldID, in.ActorID, in.IsSysAdmin); err != nil {
		return nil, err
	}

	if in.FileHeader.Size > maxUploadSize {
		return nil, ErrFileTooLarge
	}

	contentType := in.FileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedType
	}

	src, err := in.FileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the content so it can be read twice (original save + thumbnail).
	// Photos are size-capped, so holding them in memory is acceptable.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(in.FileHeader.Filename))
	photoID := uuid.New().String()

	// Sharding path: fieldphotos/ab/UUID.ext
	shard := photoID[:2]
	storagePath := fmt.Sprintf("fieldphotos/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save photo to storage: %w", err)
	}

	// Thumbnail generation is best effort; an upload without a thumbnail
	// is still a valid upload.
	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), thumbMaxWidth, thumbMaxHeight)
	if err == nil {
		tPath := fmt.Sprintf("fieldphotos/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}

	var captionPtr *string
	if strings.TrimSpace(in.Caption) != "" {
		c := strings.TrimSpace(in.Caption)
		captionPtr = &c
	}

	p := &Photo{
		ID:            photoID,
		FieldID:       in.FieldID,
		UploaderID:    in.ActorID,
		Filename:      in.FileHeader.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          in.FileHeader.Size,
		Caption:       captionPtr,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// Cleanup storage if db fails
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return p, nil
}

func (s *service) ListByField(ctx context.Context, fieldID string) ([]*Photo, error) {
	if _, err := s.fieldService.GetByID(ctx, fieldID); err != nil {
		return nil, err
	}
	return s.repo.ListByField(ctx, fieldID)
}

func (s *service) Delete(ctx context.Context, id, actorID string, isSysAdmin bool) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.canManageField(ctx, p.FieldID, actorID, isSysAdmin); err != nil {
		return err
	}

	// Best effort storage cleanup; the DB row is the source of truth.
	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}

	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if p.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, p, nil
}
