package build

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sitewinder-dev/sitewinder/internal/config"
	"github.com/sitewinder-dev/sitewinder/internal/errors"
)

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Output is the path to the output directory.
	Output string

	// Files are the output-relative paths written, sorted.
	Files []string

	// Manifest maps source-relative asset paths to their
	// fingerprinted output paths.
	Manifest map[string]string

	// TotalSize is the total size of the output in bytes.
	TotalSize int64
}

// Options configures the builder.
type Options struct {
	// Fingerprint renames assets with a content hash so they can be
	// served with long cache lifetimes.
	Fingerprint bool

	// BaseURL overrides build.base_url from the config.
	BaseURL string

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder produces a deployable static site from the project's
// static directory.
type Builder struct {
	config  *config.Config
	options Options
}

// New creates a new builder.
func New(cfg *config.Config, options Options) *Builder {
	if options.BaseURL == "" {
		options.BaseURL = cfg.Build.BaseURL
	}
	return &Builder{
		config:  cfg,
		options: options,
	}
}

// Build performs a production build.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{
		Manifest: make(map[string]string),
	}

	srcDir := b.config.StaticPath()
	if _, err := os.Stat(srcDir); err != nil {
		return nil, errors.New("E201").
			WithDetail(fmt.Sprintf("Static directory %q does not exist.", b.config.Static.Dir)).
			WithSuggestion("Check the static.dir key in " + config.ConfigFileName + ".")
	}

	outputDir := b.config.OutputPath()

	b.progress("Cleaning output directory...")
	if err := os.RemoveAll(outputDir); err != nil {
		return nil, errors.New("E202").Wrap(err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.New("E202").Wrap(err)
	}

	b.progress("Copying assets...")
	pages, err := b.copyAssets(ctx, srcDir, outputDir, result)
	if err != nil {
		return nil, err
	}

	b.progress("Rewriting pages...")
	for _, page := range pages {
		if err := b.rewritePage(outputDir, page, result.Manifest); err != nil {
			return nil, err
		}
	}

	if b.options.Fingerprint {
		b.progress("Writing manifest...")
		if err := writeManifest(outputDir, result.Manifest); err != nil {
			return nil, errors.New("E202").Wrap(err)
		}
		result.Files = append(result.Files, "manifest.json")
	}

	sort.Strings(result.Files)
	result.Output = outputDir
	result.Duration = time.Since(start)
	return result, nil
}

// copyAssets walks the static directory and copies every file into the
// output directory. HTML pages are copied as-is and returned for a
// rewrite pass; other assets are fingerprinted when enabled.
func (b *Builder) copyAssets(ctx context.Context, srcDir, outputDir string, result *Result) ([]string, error) {
	var pages []string

	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		outRel := rel
		if b.options.Fingerprint && !isPage(rel) {
			hash, err := hashFile(path)
			if err != nil {
				return err
			}
			outRel = fingerprinted(rel, hash)
			result.Manifest[rel] = outRel
		}

		dest := filepath.Join(outputDir, filepath.FromSlash(outRel))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		n, err := copyFile(path, dest)
		if err != nil {
			return err
		}

		result.Files = append(result.Files, outRel)
		result.TotalSize += n
		if isPage(rel) {
			pages = append(pages, outRel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.New("E202").Wrap(err)
	}
	return pages, nil
}

// rewritePage applies the asset manifest and the base URL to references
// inside a copied HTML page.
func (b *Builder) rewritePage(outputDir, page string, manifest map[string]string) error {
	path := filepath.Join(outputDir, filepath.FromSlash(page))
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New("E202").Wrap(err)
	}

	html := string(data)
	for src, dst := range manifest {
		html = strings.ReplaceAll(html, `"/`+src+`"`, `"/`+dst+`"`)
		html = strings.ReplaceAll(html, `"`+src+`"`, `"`+dst+`"`)
	}
	if base := strings.TrimSuffix(b.options.BaseURL, "/"); base != "" {
		html = strings.ReplaceAll(html, `href="/`, `href="`+base+`/`)
		html = strings.ReplaceAll(html, `src="/`, `src="`+base+`/`)
	}

	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return errors.New("E202").Wrap(err)
	}
	return nil
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	if err := os.RemoveAll(b.config.OutputPath()); err != nil {
		return errors.New("E202").Wrap(err)
	}
	return nil
}

func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

func isPage(rel string) bool {
	ext := strings.ToLower(filepath.Ext(rel))
	return ext == ".html" || ext == ".htm"
}

// fingerprinted inserts the first eight hash characters before the
// extension: css/app.css becomes css/app.3f7a9c2e.css.
func fingerprinted(rel, hash string) string {
	ext := filepath.Ext(rel)
	return strings.TrimSuffix(rel, ext) + "." + hash[:8] + ext
}

func writeManifest(outputDir string, manifest map[string]string) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, "manifest.json"), data, 0o644)
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer out.Close()

	n, err := io.Copy(out, in)
	if err != nil {
		return n, err
	}
	return n, out.Close()
}
