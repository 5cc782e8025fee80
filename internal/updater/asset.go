package updater

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// Asset naming constants
const (
	ChecksumSuffix    = ".sha256"
	ChecksumsFileName = "checksums.txt"
	WindowsExeSuffix  = ".exe"

	// MaxAssetSize bounds how much of an asset is read into memory
	MaxAssetSize = 512 << 20
)

// Suffixes of release files that never contain a binary
var nonBinarySuffixes = []string{
	ChecksumSuffix, ".sha512", ".md5", ".txt", ".sig", ".asc", ".pem", ".sbom", ".json", ".deb", ".rpm", ".apk", ".dmg", ".msi",
}

// Alternative spellings of GOOS/GOARCH found in release asset names
var (
	osAliases = map[string][]string{
		"darwin":  {"darwin", "macos", "osx", "mac"},
		"windows": {"windows", "win64", "win32", "win"},
		"linux":   {"linux"},
	}
	archAliases = map[string][]string{
		"amd64": {"amd64", "x86_64", "x64"},
		"arm64": {"arm64", "aarch64"},
		"386":   {"386", "i386", "i686", "x86"},
		"arm":   {"arm", "armv7", "armv6"},
	}
)

// nameTokens splits an asset name on the usual separators
func nameTokens(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
}

func hasAlias(name string, tokens []string, aliases []string) bool {
	lower := strings.ToLower(name)
	for _, alias := range aliases {
		// multi-part aliases such as x86_64 cannot be matched per token
		if strings.ContainsAny(alias, "_-") {
			if strings.Contains(lower, alias) {
				return true
			}
			continue
		}
		for _, tok := range tokens {
			if tok == alias {
				return true
			}
		}
	}
	return false
}

func isNonBinary(name string) bool {
	lower := strings.ToLower(name)
	if lower == ChecksumsFileName {
		return true
	}
	for _, suffix := range nonBinarySuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// SelectAsset picks the release asset built for goos/goarch. Assets that also
// mention binaryName are preferred.
func SelectAsset(release Release, binaryName, goos, goarch string) (Asset, error) {
	osNames, ok := osAliases[goos]
	if !ok {
		osNames = []string{goos}
	}
	archNames, ok := archAliases[goarch]
	if !ok {
		archNames = []string{goarch}
	}

	var candidates []Asset
	for _, asset := range release.Assets {
		if isNonBinary(asset.Name) {
			continue
		}
		// x86_64 splits into an "x86" token, which is a 386 alias
		if goarch != "amd64" && strings.Contains(strings.ToLower(asset.Name), "x86_64") {
			continue
		}
		tokens := nameTokens(asset.Name)
		if hasAlias(asset.Name, tokens, osNames) && hasAlias(asset.Name, tokens, archNames) {
			candidates = append(candidates, asset)
		}
	}

	if len(candidates) == 0 {
		return Asset{}, fmt.Errorf("%w: %s/%s", ErrNoAsset, goos, goarch)
	}

	if binaryName != "" {
		for _, asset := range candidates {
			if strings.Contains(strings.ToLower(asset.Name), strings.ToLower(binaryName)) {
				return asset, nil
			}
		}
	}
	return candidates[0], nil
}

// checksumAsset finds the checksum file published for asset, if any
func checksumAsset(release Release, asset Asset) (Asset, bool) {
	for _, a := range release.Assets {
		if a.Name == asset.Name+ChecksumSuffix {
			return a, true
		}
	}
	for _, a := range release.Assets {
		if strings.EqualFold(a.Name, ChecksumsFileName) {
			return a, true
		}
	}
	return Asset{}, false
}

// ParseChecksum extracts the hex digest for assetName from a sha256sum-style
// file. A file holding a single bare digest applies to any asset.
func ParseChecksum(data []byte, assetName string) (string, error) {
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		switch {
		case len(fields) == 1:
			return strings.ToLower(fields[0]), nil
		case len(fields) >= 2 && strings.TrimPrefix(fields[1], "*") == assetName:
			return strings.ToLower(fields[0]), nil
		}
	}
	return "", fmt.Errorf("no checksum listed for %s", assetName)
}

// VerifyChecksum compares the sha256 of data with the expected hex digest
func VerifyChecksum(data []byte, expected string) error {
	sum := sha256.Sum256(data)
	got := hex.EncodeToString(sum[:])
	if got != strings.ToLower(expected) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksumMismatch, expected, got)
	}
	return nil
}

// ExtractBinary returns the executable contained in an asset payload. Plain
// binaries are returned as is; tar.gz, tgz, gz and zip archives are unpacked.
func ExtractBinary(assetName string, payload []byte, binaryName string) ([]byte, error) {
	lower := strings.ToLower(assetName)
	switch {
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		gz, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("open gzip: %w", err)
		}
		defer gz.Close()
		return extractFromTar(tar.NewReader(gz), binaryName)
	case strings.HasSuffix(lower, ".zip"):
		zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
		if err != nil {
			return nil, fmt.Errorf("open zip: %w", err)
		}
		return extractFromZip(zr, binaryName)
	case strings.HasSuffix(lower, ".gz"):
		gz, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("open gzip: %w", err)
		}
		defer gz.Close()
		return readLimited(gz)
	default:
		return payload, nil
	}
}

// isBinaryEntry reports whether an archive entry is the wanted executable
func isBinaryEntry(entryName, binaryName string) bool {
	base := path.Base(entryName)
	if binaryName == "" {
		return false
	}
	return base == binaryName || base == binaryName+WindowsExeSuffix
}

func extractFromTar(tr *tar.Reader, binaryName string) ([]byte, error) {
	var single []byte
	regular := 0
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		data, err := readLimited(tr)
		if err != nil {
			return nil, err
		}
		if isBinaryEntry(hdr.Name, binaryName) {
			return data, nil
		}
		regular++
		single = data
	}
	if regular == 1 {
		return single, nil
	}
	return nil, fmt.Errorf("binary %q not found in archive", binaryName)
}

func extractFromZip(zr *zip.Reader, binaryName string) ([]byte, error) {
	var files []*zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		files = append(files, f)
	}

	pick := func(f *zip.File) ([]byte, error) {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		defer rc.Close()
		return readLimited(rc)
	}

	for _, f := range files {
		if isBinaryEntry(f.Name, binaryName) {
			return pick(f)
		}
	}
	if len(files) == 1 {
		return pick(files[0])
	}
	return nil, fmt.Errorf("binary %q not found in archive", binaryName)
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxAssetSize+1))
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	if len(data) > MaxAssetSize {
		return nil, fmt.Errorf("payload exceeds %d bytes", MaxAssetSize)
	}
	return data, nil
}

// Executable file signatures
var executableMagics = [][]byte{
	{0x7f, 'E', 'L', 'F'},    // ELF
	{0xfe, 0xed, 0xfa, 0xce}, // Mach-O 32
	{0xfe, 0xed, 0xfa, 0xcf}, // Mach-O 64
	{0xce, 0xfa, 0xed, 0xfe}, // Mach-O 32 LE
	{0xcf, 0xfa, 0xed, 0xfe}, // Mach-O 64 LE
	{0xca, 0xfe, 0xba, 0xbe}, // Mach-O universal
	{'M', 'Z'},               // PE
	{'#', '!'},               // script
}

// LooksExecutable reports whether data starts with a known executable signature
func LooksExecutable(data []byte) bool {
	for _, magic := range executableMagics {
		if bytes.HasPrefix(data, magic) {
			return true
		}
	}
	return false
}
