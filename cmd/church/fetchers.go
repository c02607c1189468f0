package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"church/interpreter-go/pkg/driver"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// gitRef names the revision to check out. Exactly one field is set.
type gitRef struct {
	Rev    string
	Tag    string
	Branch string
}

func (r gitRef) String() string {
	switch {
	case r.Rev != "":
		return "rev " + r.Rev
	case r.Tag != "":
		return "tag " + r.Tag
	default:
		return "branch " + r.Branch
	}
}

// fetchedManifest is a manifest checkout under the cache, keyed by commit.
type fetchedManifest struct {
	Dir      string
	Commit   string
	Manifest *driver.Manifest
	Cached   bool
}

func runFetch(args []string) int {
	url, ref, err := parseFetchArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		return 1
	}
	home, err := resolveChurchHome()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve CHURCH_HOME: %v\n", err)
		return 1
	}

	repoDir := filepath.Join(home, "manifests", cacheSegment(repoName(url)))
	fetched, err := fetchManifest(repoDir, url, ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch %s: %v\n", url, err)
		return 1
	}
	state := "fetched"
	if fetched.Cached {
		state = "cached"
	}
	fmt.Fprintf(os.Stderr, "%s %s (%d steps) at %s\n", state, fetched.Manifest.Name, len(fetched.Manifest.Steps), fetched.Commit)
	fmt.Fprintln(os.Stdout, fetched.Dir)
	return 0
}

func parseFetchArgs(args []string) (string, gitRef, error) {
	var (
		url string
		ref gitRef
		set int
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		var target *string
		switch name {
		case "--rev":
			target = &ref.Rev
		case "--tag":
			target = &ref.Tag
		case "--branch":
			target = &ref.Branch
		default:
			if strings.HasPrefix(arg, "-") {
				return "", gitRef{}, fmt.Errorf("unknown flag %s", arg)
			}
			if url != "" {
				return "", gitRef{}, fmt.Errorf("church fetch takes a single repository, got %q and %q", url, arg)
			}
			url = arg
			continue
		}
		if !hasValue {
			if i+1 >= len(args) {
				return "", gitRef{}, fmt.Errorf("%s requires a value", name)
			}
			i++
			value = args[i]
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return "", gitRef{}, fmt.Errorf("%s requires a value", name)
		}
		*target = value
		set++
	}
	if url == "" {
		return "", gitRef{}, errors.New("church fetch requires a repository url")
	}
	if set != 1 {
		return "", gitRef{}, errors.New("church fetch requires exactly one of --rev, --tag, or --branch")
	}
	return url, ref, nil
}

// fetchManifest makes repoDir/<commit> hold a checkout of ref with a
// loadable church.yml. A full commit hash that is already cached is served
// without touching the remote; anything else is cloned and resolved first.
func fetchManifest(repoDir, url string, ref gitRef) (*fetchedManifest, error) {
	if err := os.MkdirAll(repoDir, 0o755); err != nil {
		return nil, err
	}

	if plumbing.IsHash(ref.Rev) {
		if fetched, err := loadCachedCheckout(repoDir, plumbing.NewHash(ref.Rev)); err == nil {
			return fetched, nil
		}
	}

	stageDir, err := os.MkdirTemp(repoDir, ".fetch-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(stageDir)

	repo, err := git.PlainClone(stageDir, false, &git.CloneOptions{
		URL:        url,
		Tags:       git.AllTags,
		NoCheckout: true,
	})
	if err != nil {
		return nil, fmt.Errorf("git clone: %w", err)
	}
	hash, err := resolveRef(repo, ref)
	if err != nil {
		return nil, err
	}

	if fetched, err := loadCachedCheckout(repoDir, hash); err == nil {
		return fetched, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: hash, Force: true}); err != nil {
		return nil, fmt.Errorf("git checkout %s: %w", hash, err)
	}
	manifest, err := driver.LoadManifest(filepath.Join(stageDir, driver.ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", ref, hash, err)
	}

	targetDir := filepath.Join(repoDir, hash.String())
	if err := os.RemoveAll(targetDir); err != nil {
		return nil, err
	}
	if err := os.Rename(stageDir, targetDir); err != nil {
		return nil, err
	}
	manifest.Path = filepath.Join(targetDir, driver.ManifestFileName)
	return &fetchedManifest{Dir: targetDir, Commit: hash.String(), Manifest: manifest}, nil
}

// loadCachedCheckout returns the checkout for commit if it exists, its HEAD
// is that commit, and its manifest still loads.
func loadCachedCheckout(repoDir string, commit plumbing.Hash) (*fetchedManifest, error) {
	dir := filepath.Join(repoDir, commit.String())
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, err
	}
	head, err := repo.Head()
	if err != nil {
		return nil, err
	}
	if head.Hash() != commit {
		return nil, fmt.Errorf("cached checkout %s is at %s", dir, head.Hash())
	}
	manifest, err := driver.LoadManifest(filepath.Join(dir, driver.ManifestFileName))
	if err != nil {
		return nil, err
	}
	return &fetchedManifest{Dir: dir, Commit: commit.String(), Manifest: manifest, Cached: true}, nil
}

func resolveRef(repo *git.Repository, ref gitRef) (plumbing.Hash, error) {
	var candidates []plumbing.Revision
	switch {
	case ref.Rev != "":
		candidates = []plumbing.Revision{plumbing.Revision(ref.Rev)}
	case ref.Tag != "":
		candidates = []plumbing.Revision{plumbing.Revision("refs/tags/" + ref.Tag)}
	case ref.Branch != "":
		// A clone only creates a local branch for the remote HEAD.
		candidates = []plumbing.Revision{
			plumbing.Revision("refs/heads/" + ref.Branch),
			plumbing.Revision("refs/remotes/origin/" + ref.Branch),
		}
	default:
		return plumbing.ZeroHash, errors.New("fetch requires a rev, tag, or branch")
	}
	var lastErr error
	for _, rev := range candidates {
		hash, err := repo.ResolveRevision(rev)
		if err == nil {
			return *hash, nil
		}
		lastErr = err
	}
	return plumbing.ZeroHash, fmt.Errorf("resolve %s: %w", ref, lastErr)
}

// repoName derives the cache directory name from a clone url:
// https://host/org/demos.git and /tmp/demos both yield "demos".
func repoName(url string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/\\")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	if idx := strings.LastIndexAny(trimmed, "/\\:"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed
}

// cacheSegment maps name onto a single safe path element.
func cacheSegment(name string) string {
	name = strings.Trim(strings.TrimSpace(name), ".")
	if name == "" {
		return "manifest"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
