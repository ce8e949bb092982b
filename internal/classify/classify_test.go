package classify

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		entry  Entry
		want   string
		wantOK bool
	}{
		{"lowercase pdf", Entry{Path: "/desk/report.pdf"}, ".pdf", true},
		{"uppercase pdf", Entry{Path: "/desk/REPORT.PDF"}, ".pdf", true},
		{"mixed case pdf", Entry{Path: "/desk/Report.Pdf"}, ".pdf", true},
		{"compound uses last segment", Entry{Path: "/desk/backup.tar.gz"}, ".gz", true},
		{"appimage", Entry{Path: "/desk/Tool.AppImage"}, ".appimage", true},
		{"no extension", Entry{Path: "/desk/notes"}, "", false},
		{"trailing dot", Entry{Path: "/desk/notes."}, "", false},
		{"hidden without extension", Entry{Path: "/desk/.gitignore"}, "", false},
		{"hidden with extension", Entry{Path: "/desk/.config.json"}, ".json", true},
		{"unknown extension still classifies", Entry{Path: "/desk/archive.xyz"}, ".xyz", true},
		{"directory", Entry{Path: "/desk/Photos2023", Kind: KindDirectory}, FolderKey, true},
		{"directory with dot", Entry{Path: "/desk/site.backup.zip", Kind: KindDirectory}, FolderKey, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Classify(tc.entry)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("Classify(%q) = %q, %v; want %q, %v", tc.entry.Path, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestKeysMostSpecificFirst(t *testing.T) {
	cases := []struct {
		path string
		kind Kind
		want []string
	}{
		{"/desk/backup.TAR.GZ", KindFile, []string{".tar.gz", ".gz"}},
		{"/desk/photo.jpg", KindFile, []string{".jpg"}},
		{"/desk/a..gz", KindFile, []string{".gz"}},
		{"/desk/notes", KindFile, nil},
		{"/desk/dir.tar.gz", KindDirectory, []string{FolderKey}},
	}
	for _, tc := range cases {
		got := Keys(Entry{Path: tc.path, Kind: tc.kind})
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Keys(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"PDF":       ".pdf",
		".Pdf":      ".pdf",
		" pdf ":     ".pdf",
		".AppImage": ".appimage",
		"tar.gz":    ".tar.gz",
		"folder":    FolderKey,
		"Directory": FolderKey,
		"":          "",
		"   ":       "",
		".":         "",
		"..pdf":     ".pdf",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDefaultKeysCoverEveryGroup(t *testing.T) {
	keys := DefaultKeys()
	seen := make(map[string]string, len(keys))
	for _, k := range keys {
		if prev, dup := seen[k.Key]; dup {
			t.Fatalf("duplicate default key %q in %s and %s", k.Key, prev, k.Category)
		}
		seen[k.Key] = k.Category
	}

	want := map[string]string{
		".pdf":      "Documents",
		".rtf":      "Documents",
		".csv":      "Spreadsheets",
		".key":      "Presentations",
		".tiff":     "Images",
		".wmv":      "Videos",
		".flac":     "Audio",
		".tar.gz":   "Archives",
		".7z":       "Archives",
		".appimage": "Executables",
		".ts":       "Code",
		FolderKey:   "Folders",
	}
	for key, category := range want {
		if seen[key] != category {
			t.Fatalf("default key %q maps to %q, want %q", key, seen[key], category)
		}
	}
	if len(keys) != 53 {
		t.Fatalf("expected 53 default keys, got %d", len(keys))
	}
}

func TestCategoryFor(t *testing.T) {
	if got, ok := CategoryFor("JPEG"); !ok || got != "Images" {
		t.Fatalf("CategoryFor(JPEG) = %q, %v", got, ok)
	}
	if _, ok := CategoryFor(".xyz"); ok {
		t.Fatal("expected unknown extension to have no category")
	}
}

func TestEntryHelpers(t *testing.T) {
	e := Entry{Path: "/desk/.DS_Store"}
	if !e.Hidden() {
		t.Fatal("expected .DS_Store to be hidden")
	}
	if e.Name() != ".DS_Store" {
		t.Fatalf("unexpected name %q", e.Name())
	}
	if got := (Entry{Path: "/desk/Song.MP3"}).Extension(); got != ".mp3" {
		t.Fatalf("unexpected extension %q", got)
	}
	if KindDirectory.String() != "directory" || KindFile.String() != "file" {
		t.Fatal("unexpected kind strings")
	}
}
