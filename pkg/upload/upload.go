package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"SnackShop/config"
	"SnackShop/pkg/snowflake"

	"github.com/gin-gonic/gin"
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Storage 商品图存本地磁盘，文件名用雪花 ID 防撞
type Storage struct {
	conf *config.Config
}

func NewStorage(conf *config.Config) *Storage {
	return &Storage{conf: conf}
}

func (s *Storage) productsDir() string {
	dir := s.conf.Upload.Dir
	if dir == "" {
		dir = "uploads"
	}
	sub := s.conf.Upload.ProductsDir
	if sub == "" {
		sub = "products"
	}
	return filepath.Join(dir, sub)
}

// SaveProductImage 保存上传图片，返回对外 URL 路径
func (s *Storage) SaveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > s.conf.Upload.MaxBytes() {
		return "", fmt.Errorf("file too large (max %dMB)", s.conf.Upload.MaxBytes()>>20)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("only jpg/png/webp/gif images are accepted")
	}

	dir := s.productsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d%s", snowflake.GenID(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	public := s.conf.Upload.PublicPath
	if public == "" {
		public = "/uploads"
	}
	sub := s.conf.Upload.ProductsDir
	if sub == "" {
		sub = "products"
	}
	return fmt.Sprintf("%s/%s/%s", public, sub, name), nil
}

// RemoveByURL 删除历史图片，找不到就算了
func (s *Storage) RemoveByURL(url string) {
	public := s.conf.Upload.PublicPath
	if public == "" {
		public = "/uploads"
	}
	if !strings.HasPrefix(url, public+"/") {
		return
	}
	dir := s.conf.Upload.Dir
	if dir == "" {
		dir = "uploads"
	}
	rel := strings.TrimPrefix(url, public+"/")
	_ = os.Remove(filepath.Join(dir, filepath.FromSlash(rel)))
}
