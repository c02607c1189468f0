package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

func newManifestRepo(t *testing.T) (string, string) {
	t.Helper()
	src := filepath.Join(t.TempDir(), "classics")
	writeFile(t, filepath.Join(src, "church.yml"), passingManifest)
	commit := initGitRepo(t, src)
	return src, commit
}

func TestFetchBranchChecksOutManifest(t *testing.T) {
	src, commit := newManifestRepo(t)
	home := t.TempDir()
	t.Setenv("CHURCH_HOME", home)

	code, stdout, stderr := captureCLI(t, []string{"fetch", src, "--branch", "master"})
	if code != 0 {
		t.Fatalf("fetch exit code %d, stderr %q", code, stderr)
	}
	want := filepath.Join(home, "manifests", "classics", commit)
	if got := strings.TrimSpace(stdout); got != want {
		t.Fatalf("checkout path = %q, want %q", got, want)
	}
	if !strings.Contains(stderr, "fetched smoke (2 steps) at "+commit) {
		t.Fatalf("unexpected stderr %q", stderr)
	}

	code, runOut, runErr := captureCLI(t, []string{"run", want})
	if code != 0 {
		t.Fatalf("running fetched manifest: code %d\n%s\n%s", code, runOut, runErr)
	}
}

func TestFetchCachesByCommit(t *testing.T) {
	src, commit := newManifestRepo(t)
	repoDir := filepath.Join(t.TempDir(), "classics")

	first, err := fetchManifest(repoDir, src, gitRef{Rev: commit[:10]})
	if err != nil {
		t.Fatalf("fetchManifest short rev: %v", err)
	}
	if first.Cached || first.Commit != commit || first.Dir != filepath.Join(repoDir, commit) {
		t.Fatalf("short rev fetch = %+v", first)
	}

	// The branch resolves to the same commit, so the checkout is shared.
	byBranch, err := fetchManifest(repoDir, src, gitRef{Branch: "master"})
	if err != nil {
		t.Fatalf("fetchManifest branch: %v", err)
	}
	if !byBranch.Cached || byBranch.Dir != first.Dir {
		t.Fatalf("branch fetch = %+v", byBranch)
	}

	if err := os.RemoveAll(src); err != nil {
		t.Fatalf("remove source: %v", err)
	}
	cached, err := fetchManifest(repoDir, src, gitRef{Rev: commit})
	if err != nil {
		t.Fatalf("cached fetch: %v", err)
	}
	if !cached.Cached || cached.Commit != commit || cached.Manifest.Name != "smoke" {
		t.Fatalf("cached fetch = %+v", cached)
	}
	entries, err := os.ReadDir(repoDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != commit {
		t.Fatalf("expected only the commit checkout, got %v", entries)
	}
}

func TestFetchTag(t *testing.T) {
	src, commit := newManifestRepo(t)
	repo, err := git.PlainOpen(src)
	if err != nil {
		t.Fatalf("PlainOpen: %v", err)
	}
	if _, err := repo.CreateTag("v1.0.0", plumbing.NewHash(commit), nil); err != nil {
		t.Fatalf("CreateTag: %v", err)
	}

	repoDir := filepath.Join(t.TempDir(), "classics")
	fetched, err := fetchManifest(repoDir, src, gitRef{Tag: "v1.0.0"})
	if err != nil {
		t.Fatalf("fetchManifest: %v", err)
	}
	if fetched.Commit != commit {
		t.Fatalf("resolved %s, want %s", fetched.Commit, commit)
	}
	if fetched.Manifest.Path != filepath.Join(repoDir, commit, "church.yml") {
		t.Fatalf("manifest path = %q", fetched.Manifest.Path)
	}
}

func TestFetchRejectsRepositoryWithoutValidManifest(t *testing.T) {
	src := filepath.Join(t.TempDir(), "broken")
	writeFile(t, filepath.Join(src, "church.yml"), "name: broken\nsteps: []\n")
	initGitRepo(t, src)
	home := t.TempDir()
	t.Setenv("CHURCH_HOME", home)

	code, stdout, stderr := captureCLI(t, []string{"fetch", src, "--branch", "master"})
	if code != 1 {
		t.Fatalf("exit code = %d, want 1 (stdout %q)", code, stdout)
	}
	if !strings.Contains(stderr, "steps must list at least one step") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	entries, err := os.ReadDir(filepath.Join(home, "manifests", "broken"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("nothing should be installed, got %v", entries)
	}
}

func TestFetchUnknownBranchFails(t *testing.T) {
	src, _ := newManifestRepo(t)
	t.Setenv("CHURCH_HOME", t.TempDir())

	code, _, stderr := captureCLI(t, []string{"fetch", src, "--branch", "nope"})
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "resolve branch nope") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestParseFetchArgs(t *testing.T) {
	url, ref, err := parseFetchArgs([]string{"--tag", "v1", "https://example.com/demos.git"})
	if err != nil {
		t.Fatalf("parseFetchArgs: %v", err)
	}
	if url != "https://example.com/demos.git" || ref != (gitRef{Tag: "v1"}) {
		t.Fatalf("got %q %+v", url, ref)
	}

	cases := []struct {
		args []string
		msg  string
	}{
		{args: nil, msg: "requires a repository url"},
		{args: []string{"repo"}, msg: "exactly one of"},
		{args: []string{"repo", "--rev", "a", "--tag", "b"}, msg: "exactly one of"},
		{args: []string{"repo", "--rev"}, msg: "--rev requires a value"},
		{args: []string{"repo", "--branch="}, msg: "--branch requires a value"},
		{args: []string{"repo", "--depth", "1"}, msg: "unknown flag --depth"},
		{args: []string{"one", "two", "--rev", "a"}, msg: "single repository"},
	}
	for _, tc := range cases {
		_, _, err := parseFetchArgs(tc.args)
		if err == nil || !strings.Contains(err.Error(), tc.msg) {
			t.Fatalf("parseFetchArgs(%v): expected %q, got %v", tc.args, tc.msg, err)
		}
	}
}

func TestRepoNameAndCacheSegment(t *testing.T) {
	cases := map[string]string{
		"https://example.com/org/demos.git": "demos",
		"git@example.com:org/demos.git":     "demos",
		"/tmp/manifests/classics/":          "classics",
		"classics":                          "classics",
	}
	for in, want := range cases {
		if got := repoName(in); got != want {
			t.Fatalf("repoName(%q) = %q, want %q", in, got, want)
		}
	}
	if got := cacheSegment("feature/x@abc"); got != "feature_x_abc" {
		t.Fatalf("cacheSegment = %q", got)
	}
	for _, blank := range []string{"  ", "..", ""} {
		if got := cacheSegment(blank); got != "manifest" {
			t.Fatalf("cacheSegment(%q) = %q", blank, got)
		}
	}
}

func TestResolveChurchHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHURCH_HOME", dir)
	home, err := resolveChurchHome()
	if err != nil || home != dir {
		t.Fatalf("resolveChurchHome = %q, %v", home, err)
	}

	userHome := t.TempDir()
	t.Setenv("CHURCH_HOME", "")
	t.Setenv("HOME", userHome)
	home, err = resolveChurchHome()
	if err != nil || home != filepath.Join(userHome, ".church") {
		t.Fatalf("default home = %q, %v", home, err)
	}
}
