// Package app wires the analysis core to its collaborators: upload
// validation, handle bookkeeping, and export. Validation happens here,
// before the core ever sees the bytes.
package app

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"datalens/domain/core"
	"datalens/domain/report"
	"datalens/domain/table"
	"datalens/internal/analysis"
	"datalens/internal/config"
	apperrors "datalens/internal/errors"
	"datalens/internal/export"
	"datalens/internal/session"
	"datalens/ports"
)

// AnalysisService is the collaborator facade around the analysis pipeline.
type AnalysisService struct {
	cfg      *config.Config
	loader   ports.TableLoader
	pipeline *analysis.Pipeline
	handles  *session.Registry
}

// NewAnalysisService assembles the service from its parts.
func NewAnalysisService(cfg *config.Config, loader ports.TableLoader, handles *session.Registry) *AnalysisService {
	return &AnalysisService{
		cfg:      cfg,
		loader:   loader,
		pipeline: analysis.NewPipeline(cfg.Analysis),
		handles:  handles,
	}
}

// ValidateUpload enforces the pre-core upload limits: extension allow-list
// and maximum size.
func (s *AnalysisService) ValidateUpload(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, a := range s.cfg.Upload.AllowedExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.WithCode(apperrors.CodeInvalidUpload, core.NewUnsupportedFileError(ext))
	}
	if size > s.cfg.Upload.MaxFileBytes {
		return apperrors.WithCode(apperrors.CodeInvalidUpload, core.NewFileTooLargeError(size, s.cfg.Upload.MaxFileBytes))
	}
	return nil
}

// AnalyzeUpload validates, loads, registers, and analyzes an uploaded file.
// The returned handle lets the caller run later export actions without
// re-uploading.
func (s *AnalysisService) AnalyzeUpload(ctx context.Context, content []byte, filename string) (*session.Handle, *report.AnalysisResult, error) {
	if err := s.ValidateUpload(filename, int64(len(content))); err != nil {
		return nil, nil, err
	}

	t, err := s.loader.Load(content, filename)
	if err != nil {
		return nil, nil, wrapLoadError(err)
	}

	handle := s.handles.Put(filename, core.NewFingerprint(content), t)
	result, err := s.pipeline.Analyze(t)
	if err != nil {
		s.handles.Delete(handle.ID)
		return nil, nil, apperrors.Wrap(err, "analysis failed")
	}

	log.Printf("[AnalysisService] Analyzed %s via handle %s", filename, handle.ID)
	return handle, result, nil
}

// AnalyzeHandle re-runs the pipeline for a previously uploaded dataset.
func (s *AnalysisService) AnalyzeHandle(ctx context.Context, id core.HandleID) (*report.AnalysisResult, error) {
	h, err := s.handles.Get(id)
	if err != nil {
		return nil, apperrors.WithCode(apperrors.CodeHandleNotFound, err)
	}
	result, err := s.pipeline.Analyze(h.Table)
	if err != nil {
		return nil, apperrors.Wrap(err, "analysis failed")
	}
	return result, nil
}

// CleanUpload validates and loads a file, then returns only the cleaned
// table, for export without full analysis.
func (s *AnalysisService) CleanUpload(content []byte, filename string) (*table.Table, error) {
	if err := s.ValidateUpload(filename, int64(len(content))); err != nil {
		return nil, err
	}
	t, err := s.loader.Load(content, filename)
	if err != nil {
		return nil, wrapLoadError(err)
	}
	cleaned, err := analysis.Clean(t)
	if err != nil {
		return nil, apperrors.Wrap(err, "cleaning failed")
	}
	return cleaned, nil
}

// ExportBundle re-analyzes the dataset behind a handle and writes every
// export artifact into dir.
func (s *AnalysisService) ExportBundle(ctx context.Context, id core.HandleID, dir string) error {
	result, err := s.AnalyzeHandle(ctx, id)
	if err != nil {
		return err
	}
	return export.WriteBundle(ctx, dir, result)
}

// Handles exposes the registry so an entry point can start its janitor.
func (s *AnalysisService) Handles() *session.Registry {
	return s.handles
}

// wrapLoadError attaches the matching application error code to a loader
// failure while preserving the domain sentinel for errors.Is checks.
func wrapLoadError(err error) error {
	switch {
	case core.IsLoadError(err):
		code := apperrors.CodeDecodeError
		if errors.Is(err, core.ErrEmptyDataset) {
			code = apperrors.CodeEmptyDataset
		} else if errors.Is(err, core.ErrMalformedHeader) {
			code = apperrors.CodeMalformedHeader
		}
		return apperrors.WithCode(code, err)
	case core.IsUploadValidationError(err):
		return apperrors.WithCode(apperrors.CodeInvalidUpload, err)
	default:
		return apperrors.Wrap(err, "failed to load dataset")
	}
}
