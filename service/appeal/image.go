package appeal

import (
	"bytes"
	"image"
	_ "image/gif"  // image.Decode用
	_ "image/jpeg" // image.Decode用
	_ "image/png"  // image.Decode用
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/sapphi-red/midec"
	_ "github.com/sapphi-red/midec/gif" // gif, png, webpのアニメーション判定用
	_ "github.com/sapphi-red/midec/png"
	_ "github.com/sapphi-red/midec/webp"
	_ "golang.org/x/image/webp" // image.Decode用
)

const (
	// MaxImageSize 添付画像の最大ファイルサイズ
	MaxImageSize = 2 << 20
	// MaxImagePixels 添付画像の最大画素数
	MaxImagePixels = 2560 * 1600
)

type imageFormat struct {
	ext      string
	mimeType string
	// encode 再エンコード時の形式。再エンコードしない場合はnil
	encode *imaging.Format
}

var (
	formatPNG  = imaging.PNG
	formatJPEG = imaging.JPEG
	formatGIF  = imaging.GIF

	imageFormats = map[string]imageFormat{
		"png":  {ext: ".png", mimeType: "image/png", encode: &formatPNG},
		"jpeg": {ext: ".jpg", mimeType: "image/jpeg", encode: &formatJPEG},
		"gif":  {ext: ".gif", mimeType: "image/gif", encode: &formatGIF},
		"webp": {ext: ".webp", mimeType: "image/webp"},
	}
)

// processedImage 検証済みの添付画像
type processedImage struct {
	data     []byte
	ext      string
	mimeType string
}

// processImage 添付画像を検証し、保存する内容を返します
//
// 画像としてデコードできない場合はErrUnsupportedImage、
// MaxImageSizeまたはMaxImagePixelsを超える場合はErrImageTooLargeを返します。
// アニメーション画像とwebpはそのまま、それ以外は再エンコードしてメタデータを除去します。
func processImage(src io.Reader) (*processedImage, error) {
	b, err := io.ReadAll(io.LimitReader(src, MaxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return nil, ErrUnsupportedImage
	}
	f, ok := imageFormats[format]
	if !ok {
		return nil, ErrUnsupportedImage
	}
	// 画素数チェック
	if cfg.Width*cfg.Height > MaxImagePixels {
		return nil, ErrImageTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	res := &processedImage{data: b, ext: f.ext, mimeType: f.mimeType}
	if f.encode == nil {
		return res, nil
	}
	if format != "jpeg" {
		animated, err := midec.IsAnimated(bytes.NewReader(b))
		if err != nil {
			return nil, ErrUnsupportedImage
		}
		if animated {
			return res, nil
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, *f.encode); err != nil {
		return nil, err
	}
	res.data = buf.Bytes()
	return res, nil
}

// imageMimeType 保存済み画像のキーからMIMEタイプを返します
func imageMimeType(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	for _, f := range imageFormats {
		if f.ext == ext {
			return f.mimeType
		}
	}
	return "application/octet-stream"
}
