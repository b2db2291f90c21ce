package util

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/eve-task/eve-cli/internal/model"
)

const metadataFile = "metadata.json"

// GenerateMetadata walks the data directory and records the modification
// time of every file, keyed by its relative path.
func GenerateMetadata(dir string) (map[string]string, error) {
	metadata := make(map[string]string)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Printf("⚠️ Failed to access path: %s (%v)", path, err)
			return nil
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			log.Printf("⚠️ Failed to get relative path for: %s (%v)", path, err)
			return nil
		}

		// Temporary files from an interrupted save are not synced
		if strings.HasPrefix(filepath.Base(relPath), ".tasks-") {
			return nil
		}

		metadata[relPath] = info.ModTime().Format(time.RFC3339)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("❌ Failed to scan directory: %w", err)
	}

	return metadata, nil
}

// SaveMetadata writes metadata.json next to the data files.
func SaveMetadata(metadataPath string, metadata map[string]string) error {
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("❌ Failed to marshal metadata.json: %w", err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return fmt.Errorf("❌ Failed to write metadata.json: %w", err)
	}

	return nil
}

// LoadMetadata reads metadata.json, returning an empty map when absent.
func LoadMetadata(metadataPath string) (map[string]string, error) {
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to read metadata.json: %w", err)
	}

	var metadata map[string]string
	err = json.Unmarshal(data, &metadata)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to parse metadata.json: %w", err)
	}

	return metadata, nil
}

func UploadMetadataToS3(s3Client *s3.Client, config model.Config) error {
	metadataPath := filepath.Join(config.DataDir, metadataFile)
	s3Key := "data/" + metadataFile

	file, err := os.Open(metadataPath)
	if err != nil {
		return fmt.Errorf("❌ Failed to open %s: %w", metadataPath, err)
	}
	defer file.Close()

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(config.Sync.Bucket),
		Key:    aws.String(s3Key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("❌ Failed to upload %s to S3: %w", s3Key, err)
	}

	return nil
}

func DownloadMetadataFromS3(s3Client *s3.Client, config model.Config) (map[string]string, error) {
	metadataPath := filepath.Join(config.DataDir, metadataFile)
	s3Key := "data/" + metadataFile

	resp, err := s3Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(config.Sync.Bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		if isNotFoundErr(err) {
			log.Printf("⚠️ No %s found on S3, returning empty metadata.", s3Key)
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("❌ Failed to download %s from S3: %w", s3Key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to read %s from S3: %w", s3Key, err)
	}

	err = os.WriteFile(metadataPath, data, 0644)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to save %s: %w", metadataPath, err)
	}

	metadata, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("❌ Failed to load downloaded metadata: %w", err)
	}

	return metadata, nil
}

// DetectChanges compares local and remote metadata and returns the files
// that need to move in the given direction ("local" for push, "s3" for
// pull). Last writer wins; the one-second slack absorbs filesystems with
// coarse modtime resolution.
func DetectChanges(localMeta, remoteMeta map[string]string, source string) []string {
	var filesToSync []string

	for file, remoteTimeStr := range remoteMeta {
		if file == metadataFile {
			continue
		}

		localTimeStr, exists := localMeta[file]

		if !exists {
			if source == "s3" {
				filesToSync = append(filesToSync, file)
			}
			continue
		}

		remoteTime, err := time.Parse(time.RFC3339, remoteTimeStr)
		if err != nil {
			log.Printf("⚠️ Failed to parse remote timestamp for %s: %v", file, err)
			continue
		}

		localTime, err := time.Parse(time.RFC3339, localTimeStr)
		if err != nil {
			log.Printf("⚠️ Failed to parse local timestamp for %s: %v", file, err)
			continue
		}

		if source == "s3" && remoteTime.After(localTime.Add(1*time.Second)) {
			filesToSync = append(filesToSync, file)
		}

		if source == "local" && localTime.After(remoteTime.Add(1*time.Second)) {
			filesToSync = append(filesToSync, file)
		}
	}

	if source == "local" {
		for file := range localMeta {
			if file == metadataFile {
				continue
			}
			if _, exists := remoteMeta[file]; !exists {
				filesToSync = append(filesToSync, file)
			}
		}
	}

	return filesToSync
}
