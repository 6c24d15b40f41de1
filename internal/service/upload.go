package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"AreejShop/config"
	"AreejShop/internal/model/dto"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/logger"
)

// 商品图统一转成 webp 存储，原始格式只在内存中短暂存在
var allowedUploadTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// 大图先缩到这个边界内再编码，商品卡片用不到更高的分辨率
const maxImageDimension = 1600

type UploadService struct{}

var (
	uploadService *UploadService
	uploadOnce    sync.Once
)

func Upload() *UploadService {
	uploadOnce.Do(func() {
		uploadService = &UploadService{}
	})
	return uploadService
}

// SaveImage 校验并保存上传的图片，统一转码为 webp，文件名用 UUID
func (s *UploadService) SaveImage(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadData, error) {
	if fileHeader.Size > config.Cfg.UploadMaxBytes {
		return nil, pkgerrors.UploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadTypes[ext] {
		return nil, pkgerrors.UploadTypeInvalid
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, pkgerrors.UploadTypeInvalid
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		img = imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(config.Cfg.UploadWebPQual)}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}

	if err := os.MkdirAll(config.Cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	filename := uuid.NewString() + ".webp"
	path := filepath.Join(config.Cfg.UploadDir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	logger.Logger.Info("Image uploaded",
		zap.String("filename", filename),
		zap.Int64("original_size", fileHeader.Size),
		zap.Int("webp_size", buf.Len()),
	)

	return &dto.UploadData{
		URL:      strings.TrimRight(config.Cfg.UploadPublicURL, "/") + "/" + filename,
		Filename: filename,
	}, nil
}
