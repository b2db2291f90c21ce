/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/eve-task/eve-cli/internal/model"
	"github.com/eve-task/eve-cli/internal/util"
)

// SyncWithS3 reconciles the local data directory with the S3 bucket.
// Direction is "push" (local wins) or "pull" (S3 wins).
func SyncWithS3(config model.Config, direction string) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	if direction == "pull" {
		log.Println("🔄 Downloading metadata from S3...")

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		localMetadata, _ := util.LoadMetadata(filepath.Join(config.DataDir, "metadata.json"))

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "s3")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Downloading changed files from S3...")
			err = util.SyncFilesToS3(config, "pull", fileList)
			if err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Saving updated metadata...")
		err = util.SaveMetadata(filepath.Join(config.DataDir, "metadata.json"), remoteMetadata)
		if err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil

	} else if direction == "push" {
		log.Println("🔄 Generating metadata for push...")

		localMetadata, err := util.GenerateMetadata(config.DataDir)
		if err != nil {
			return fmt.Errorf("❌ Failed to generate metadata.json: %w", err)
		}

		err = util.SaveMetadata(filepath.Join(config.DataDir, "metadata.json"), localMetadata)
		if err != nil {
			return fmt.Errorf("❌ Failed to save metadata.json: %w", err)
		}

		remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to download metadata.json from S3: %w", err)
		}

		fileList := util.DetectChanges(localMetadata, remoteMetadata, "local")
		if len(fileList) == 0 {
			log.Println("✅ No changes detected. Everything is up-to-date.")
		} else {
			log.Println("🔄 Uploading changed files to S3...")
			err = util.SyncFilesToS3(config, "push", fileList)
			if err != nil {
				return fmt.Errorf("❌ Sync failed: %w", err)
			}
		}

		log.Println("🔄 Uploading metadata to S3...")
		err = util.UploadMetadataToS3(s3Client, config)
		if err != nil {
			return fmt.Errorf("❌ Failed to upload metadata.json: %w", err)
		}

		log.Println("✅ Sync completed successfully.")
		return nil
	}
	return fmt.Errorf("❌ Unknown sync direction: %s", direction)
}

// ShowSyncStatus lists the files that a `sync pull` would download.
func ShowSyncStatus(config model.Config) error {
	s3Client, err := util.NewS3Client(config)
	if err != nil {
		return fmt.Errorf("❌ Failed to initialize S3 client: %w", err)
	}

	localMetadata, _ := util.LoadMetadata(filepath.Join(config.DataDir, "metadata.json"))

	remoteMetadata, err := util.DownloadMetadataFromS3(s3Client, config)
	if err != nil {
		return err
	}

	diff := util.DetectChanges(localMetadata, remoteMetadata, "s3")

	log.Println("📌 Files to be updated from S3:")
	for _, file := range diff {
		log.Println("   -", file)
	}

	return nil
}
