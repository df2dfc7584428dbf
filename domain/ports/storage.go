package ports

import (
	"context"
	"io"
)

// StoragePort คือ interface หลักสำหรับ storage
// ทำให้เปลี่ยน storage provider ได้ง่าย (Local, S3/MinIO)
type StoragePort interface {
	// UploadFile อัปโหลดไฟล์ไปยัง storage และคืน URL ที่เข้าถึงได้
	UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error)

	// DeleteFile ลบไฟล์จาก storage
	DeleteFile(ctx context.Context, path string) error

	// GetFileURL รับ URL สำหรับเข้าถึงไฟล์
	GetFileURL(path string) string

	// GetProviderName ชื่อ provider (local, s3)
	GetProviderName() string
}
