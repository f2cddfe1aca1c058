package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog"

	"github.com/huyi122/Ticket-Master/model"
)

var ErrNoCloudBackup = errors.New("no cloud backup available")

// Cloud stores snapshot documents as raw assets under backups/<folder>/.
// Restore picks the lexicographically last name among what is listed.
type Cloud struct {
	cld    *cloudinary.Cloudinary
	folder string
	log    zerolog.Logger
}

func NewCloud(cld *cloudinary.Cloudinary, folder string, log zerolog.Logger) *Cloud {
	return &Cloud{cld: cld, folder: folder, log: log}
}

// Upload pushes the document under a minute-precision name. Two uploads
// in the same minute overwrite each other; last write wins, matching the
// reconciliation model.
func (c *Cloud) Upload(ctx context.Context, doc *model.BackupData) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	name := CloudFilename(time.Now())
	_, err = c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     c.publicID(name),
		ResourceType: "raw",
	})
	if err != nil {
		return "", fmt.Errorf("cloud upload: %w", err)
	}

	c.log.Info().Str("name", name).Msg("backup uploaded")
	return name, nil
}

// RestoreLatest downloads and verifies the newest-named backup.
func (c *Cloud) RestoreLatest(ctx context.Context) (*model.BackupData, string, error) {
	res, err := c.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:    api.File,
		DeliveryType: "upload",
		Prefix:       c.publicID(""),
		MaxResults:   500,
	})
	if err != nil {
		return nil, "", fmt.Errorf("cloud list: %w", err)
	}

	names := make([]string, 0, len(res.Assets))
	urls := make(map[string]string, len(res.Assets))
	for _, asset := range res.Assets {
		names = append(names, asset.PublicID)
		urls[asset.PublicID] = asset.SecureURL
	}
	latest := PickLatest(names)
	if latest == "" {
		return nil, "", ErrNoCloudBackup
	}

	raw, err := c.fetch(ctx, urls[latest])
	if err != nil {
		return nil, "", err
	}
	doc, err := Decode(raw)
	if err != nil {
		return nil, "", err
	}

	c.log.Info().Str("name", latest).Msg("backup restored from cloud")
	return doc, latest, nil
}

func (c *Cloud) publicID(name string) string {
	return "backups/" + c.folder + "/" + name
}

func (c *Cloud) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloud download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cloud download: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
