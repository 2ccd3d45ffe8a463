package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/karinaconstandache/PhotoBooker/internal/models"
	"github.com/karinaconstandache/PhotoBooker/internal/repository"
	"github.com/karinaconstandache/PhotoBooker/internal/testutil"
	jwtPkg "github.com/karinaconstandache/PhotoBooker/pkg/jwt"
	"github.com/karinaconstandache/PhotoBooker/pkg/qrcode"
	"github.com/karinaconstandache/PhotoBooker/pkg/storage"
	"github.com/karinaconstandache/PhotoBooker/pkg/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret-that-is-long-enough-1234"

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *recordingMailer) SendWelcome(_ context.Context, to, _ string, _ bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return m.err
}

type env struct {
	db            *gorm.DB
	users         repository.UserRepository
	portfolios    repository.PortfolioRepository
	store         *storage.MemoryStorage
	mailer        *recordingMailer
	tokens        *jwtPkg.Manager
	auth          *AuthService
	photographers *PhotographerService
	catalog       *PortfolioService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.SetupDB(t)
	e := &env{
		db:         db,
		users:      repository.NewUserRepository(db),
		portfolios: repository.NewPortfolioRepository(db),
		store:      storage.NewMemoryStorage("http://cdn.test"),
		mailer:     &recordingMailer{},
		tokens:     jwtPkg.NewManager(testSecret, "PhotoBooker", "PhotoBookerClient", 0),
	}
	e.rebuild()
	return e
}

// rebuild recreates the services after a repository was swapped.
func (e *env) rebuild() {
	v := utils.NewValidator()
	log := zap.NewNop()
	e.auth = NewAuthService(e.users, e.tokens, e.mailer, v, log)
	e.photographers = NewPhotographerService(e.users, e.portfolios, e.store, qrcode.NewQRService("http://localhost:5173"), v, log)
	e.catalog = NewPortfolioService(e.portfolios, e.users, e.store, v, log)
}

func (e *env) register(t *testing.T, username string, role models.Role) *models.AuthResponse {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), models.RegisterRequest{
		Username:  username,
		Password:  "secret123",
		FirstName: "First",
		LastName:  "Last",
		Role:      role,
	})
	require.NoError(t, err)
	return resp
}

func (e *env) createPortfolio(t *testing.T, ownerID uint, title string) *models.PortfolioDto {
	t.Helper()
	dto, err := e.catalog.CreatePortfolio(context.Background(), ownerID, models.CreatePortfolioRequest{
		Title:       title,
		Description: "A collection",
		Category:    models.CategoryWedding,
	})
	require.NoError(t, err)
	return dto
}

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(w, h), nil))
	return buf.Bytes()
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

func upload(name string, data []byte, order int) ImageUpload {
	return ImageUpload{Filename: name, Size: int64(len(data)), Content: bytes.NewReader(data), DisplayOrder: order}
}

// untouchableReader fails the test if anything reads from it.
type untouchableReader struct{ t *testing.T }

func (r untouchableReader) Read([]byte) (int, error) {
	r.t.Error("upload content was read")
	return 0, errors.New("must not be read")
}

// racingUsers reports every username as free, like a concurrent request
// that passed the existence check first.
type racingUsers struct {
	repository.UserRepository
}

func (racingUsers) UsernameExists(context.Context, string) (bool, error) { return false, nil }

type failingImages struct {
	repository.PortfolioRepository
}

func (failingImages) CreateImage(context.Context, *models.PortfolioImage) error {
	return errors.New("disk full")
}

// orphanedImages hides every portfolio so images look orphaned.
type orphanedImages struct {
	repository.PortfolioRepository
}

func (orphanedImages) GetByID(context.Context, uint) (*models.Portfolio, error) {
	return nil, repository.ErrNotFound
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// pngHeader returns a PNG signature and IHDR chunk declaring w x h pixels.
// No pixel data follows, so only header parsing can succeed.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := make([]byte, 0, 17)
	chunk = append(chunk, "IHDR"...)
	chunk = binary.BigEndian.AppendUint32(chunk, w)
	chunk = binary.BigEndian.AppendUint32(chunk, h)
	chunk = append(chunk, 8, 0, 0, 0, 0)

	_ = binary.Write(&buf, binary.BigEndian, uint32(len(chunk)-4))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// streamed declares size but streams head followed by extra zero bytes.
func streamed(name string, head []byte, extra int64, size int64) ImageUpload {
	return ImageUpload{
		Filename: name,
		Size:     size,
		Content:  io.MultiReader(bytes.NewReader(head), io.LimitReader(zeroReader{}, extra)),
	}
}
