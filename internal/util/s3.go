package util

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/eve-task/eve-cli/internal/model"
)

func UploadToS3(s3Client *s3.Client, bucket, filePath string, s3Key string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("❌ Failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(s3Key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("❌ Failed to upload %s to S3: %w", s3Key, err)
	}

	log.Printf("✅ Uploaded %s to S3", s3Key)
	return nil
}

func DownloadFromS3(s3Client *s3.Client, bucket, s3Key string, localPath string) error {
	resp, err := s3Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		return fmt.Errorf("❌ Failed to download %s from S3: %w", s3Key, err)
	}
	defer resp.Body.Close()

	localDir := filepath.Dir(localPath)
	if err := os.MkdirAll(localDir, os.ModePerm); err != nil {
		return fmt.Errorf("❌ Failed to create directory %s: %w", localDir, err)
	}

	file, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("❌ Failed to create file %s: %w", localPath, err)
	}
	defer file.Close()

	_, err = file.ReadFrom(resp.Body)
	if err != nil {
		return fmt.Errorf("❌ Failed to write file %s: %w", localPath, err)
	}

	log.Printf("✅ Downloaded %s from S3", s3Key)
	return nil
}

// SyncFilesToS3 moves the listed data-dir files in the given direction
// ("push" uploads, "pull" downloads). Keys live under the data/ prefix.
func SyncFilesToS3(eveConfig model.Config, direction string, files []string) error {
	s3Client, err := NewS3Client(eveConfig)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	for _, file := range files {
		localPath := filepath.Join(eveConfig.DataDir, file)
		s3Key := "data/" + filepath.ToSlash(file)

		switch direction {
		case "push":
			if err := UploadToS3(s3Client, eveConfig.Sync.Bucket, localPath, s3Key); err != nil {
				return err
			}
		case "pull":
			if err := DownloadFromS3(s3Client, eveConfig.Sync.Bucket, s3Key, localPath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("❌ Unknown sync direction: %s", direction)
		}
	}

	return nil
}

func isNotFoundErr(err error) bool {
	var s3Err *types.NoSuchKey
	return errors.As(err, &s3Err)
}

func NewS3Client(eveConfig model.Config) (*s3.Client, error) {
	if !eveConfig.Sync.Enable {
		return nil, fmt.Errorf("sync is not enabled, set sync.enable in config.yaml")
	}
	if eveConfig.Sync.Bucket == "" {
		return nil, fmt.Errorf("sync.bucket is not configured")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithSharedConfigProfile(eveConfig.Sync.AWSProfile),
		config.WithRegion(eveConfig.Sync.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	s3Client := s3.NewFromConfig(cfg)

	return s3Client, nil
}
