package services

import (
	"fmt"
	"os"
	"path/filepath"
)

const MaxUploadBatchSize = 10

type UploadFile struct {
	Name string
	Data []byte
}

// UploadService writes validated sensor file batches under one directory
// per user, keyed by the user's email.
type UploadService struct {
	dumpDir string
}

func NewUploadService(dumpDir string) *UploadService {
	return &UploadService{dumpDir: dumpDir}
}

// ValidateUploadBatch checks the whole batch before anything is written,
// so a single bad file rejects the request with no partial writes.
func ValidateUploadBatch(category SensorCategory, files []UploadFile) map[string]string {
	if len(files) == 0 {
		return map[string]string{"files": "At least one file is required"}
	}
	if len(files) > MaxUploadBatchSize {
		return map[string]string{"files": fmt.Sprintf("At most %d files are allowed per request", MaxUploadBatchSize)}
	}
	for _, file := range files {
		if len(file.Data) == 0 {
			return map[string]string{"files": fmt.Sprintf("The submitted file %q is empty", file.Name)}
		}
		if !category.Matches(file.Name) {
			return map[string]string{"files": category.RuleMessage()}
		}
	}
	return nil
}

// Store creates the user's dump directory if absent and writes each file
// under its original name, overwriting same-named files.
func (service *UploadService) Store(email string, files []UploadFile) error {
	dirPath := service.UserDir(email)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}
	for _, file := range files {
		target := filepath.Join(dirPath, filepath.Base(file.Name))
		if err := os.WriteFile(target, file.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", file.Name, err)
		}
	}
	return nil
}

func (service *UploadService) UserDir(email string) string {
	return filepath.Join(service.dumpDir, email)
}
