package jar_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/DaRealTurtyWurty/Railroad-sub001/errors"
	"github.com/DaRealTurtyWurty/Railroad-sub001/jar"
)

func TestCreateInvocationOrder(t *testing.T) {
	argv, err := jar.New().
		Binary("jar").
		Create().
		ArchiveFile("out.jar").
		MainClass("App").
		AddFile("App.class").
		Args()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"jar", "--create", "--file", "out.jar", "--main-class", "App", "App.class"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("argv = %v, want %v", argv, want)
	}
}

func TestTrailingEntriesFollowAllFlags(t *testing.T) {
	argv, err := jar.New().
		Binary("jar").
		Create().
		AddFile("A.class").
		ArchiveFile("out.jar").
		ChangeDir("classes", "B.class").
		Verbose().
		Args()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"jar", "--create",
		"--file", "out.jar", "--verbose",
		"A.class", "-C", "classes", "B.class",
	}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("argv = %v, want %v", argv, want)
	}
}

func TestNoModeFails(t *testing.T) {
	_, err := jar.New().Binary("jar").ArchiveFile("out.jar").Args()
	if err == nil {
		t.Fatal("expected error when no mode is selected")
	}
	if !errors.IsConfiguration(err) {
		t.Errorf("expected a configuration error, got %v", err)
	}
	te, _ := errors.AsToolError(err)
	if te.Code != errors.ErrCodeMissingMode {
		t.Errorf("expected MISSING_MODE, got %s", te.Code)
	}
}

func TestModeSelectionReplaces(t *testing.T) {
	argv, err := jar.New().
		Binary("jar").
		Create().
		List().
		ArchiveFile("out.jar").
		Args()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if argv[1] != "--list" {
		t.Errorf("last selected mode must win, got %q", argv[1])
	}
	for _, tok := range argv {
		if tok == "--create" {
			t.Error("replaced mode must not appear in the vector")
		}
	}
}

func TestGenerateIndexToken(t *testing.T) {
	argv, err := jar.New().
		Binary("jar").
		GenerateIndex("a.jar").
		Args()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if argv[1] != "--generate-index=a.jar" {
		t.Errorf("expected '--generate-index=a.jar' as second element, got %q", argv[1])
	}
}

func TestGenerateIndexWithoutTarget(t *testing.T) {
	_, err := jar.New().Binary("jar").GenerateIndex("").Args()
	if err == nil {
		t.Fatal("expected error for missing index target")
	}
	te, ok := errors.AsToolError(err)
	if !ok || te.Code != errors.ErrCodeMissingIndexTarget {
		t.Errorf("expected MISSING_INDEX_TARGET, got %v", err)
	}
}

func TestLeavingGenerateIndexDiscardsTarget(t *testing.T) {
	argv, err := jar.New().
		Binary("jar").
		GenerateIndex("a.jar").
		List().
		ArchiveFile("a.jar").
		Args()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tok := range argv {
		if tok == "--generate-index=a.jar" {
			t.Error("generate-index token must not survive a mode transition")
		}
	}
	if argv[1] != "--list" {
		t.Errorf("expected --list, got %q", argv[1])
	}

	// Re-selecting another mode and back requires a fresh target.
	_, err = jar.New().Binary("jar").GenerateIndex("a.jar").List().GenerateIndex("").Args()
	if err == nil {
		t.Fatal("discarded target must not be reused")
	}
}

func TestEmptyArchiveFileRejected(t *testing.T) {
	b := jar.New().Binary("jar").Create().ArchiveFile(" ")
	if b.Err() == nil {
		t.Fatal("blank archive path must fail")
	}
	if !errors.IsConfiguration(b.Err()) {
		t.Errorf("expected a configuration error, got %v", b.Err())
	}
	te, ok := errors.AsToolError(b.Err())
	if !ok || te.Code != errors.ErrCodeInvalidOption {
		t.Errorf("expected %s, got %v", errors.ErrCodeInvalidOption, b.Err())
	}
	if _, ok := te.Details["fields"]; !ok {
		t.Error("validation errors must carry the failing fields as details")
	}
}

func TestAddFilesNilRejected(t *testing.T) {
	b := jar.New().Binary("jar").Create().AddFiles(nil)
	if b.Err() == nil {
		t.Fatal("nil entry slice must fail")
	}

	b = jar.New().Binary("jar").Create().AddFiles([]string{})
	if b.Err() != nil {
		t.Fatalf("zero-length entry slice must be permitted: %v", b.Err())
	}
}

func TestRunSurfacesMissingMode(t *testing.T) {
	_, err := jar.New().Binary("jar").Run(context.Background())
	if err == nil {
		t.Fatal("expected configuration error")
	}
	if !errors.IsConfiguration(err) {
		t.Errorf("expected a configuration error, got %v", err)
	}
}

func TestBuilderReusable(t *testing.T) {
	b := jar.New().Binary("jar").List().ArchiveFile("out.jar")
	first, err := b.Args()
	if err != nil {
		t.Fatal(err)
	}
	second, err := b.Args()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("re-assembly from the same state must be identical")
	}
}

func TestDescribeModuleAndValidate(t *testing.T) {
	argv, err := jar.New().Binary("jar").DescribeModule().ArchiveFile("m.jar").Args()
	if err != nil {
		t.Fatal(err)
	}
	if argv[1] != "--describe-module" {
		t.Errorf("expected --describe-module, got %q", argv[1])
	}

	argv, err = jar.New().Binary("jar").Validate().ArchiveFile("m.jar").Args()
	if err != nil {
		t.Fatal(err)
	}
	if argv[1] != "--validate" {
		t.Errorf("expected --validate, got %q", argv[1])
	}
}
