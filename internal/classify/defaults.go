package classify

// Group is a named category bucket and the extensions seeded into it.
type Group struct {
	Name       string
	Extensions []string
}

// DefaultGroups is the built-in category table. Seeding maps every extension
// of a group, plus FolderKey for the Folders bucket, to <sorted root>/<Name>.
var DefaultGroups = []Group{
	{Name: "Documents", Extensions: []string{".pdf", ".docx", ".doc", ".txt", ".odt", ".rtf"}},
	{Name: "Spreadsheets", Extensions: []string{".xls", ".xlsx", ".csv", ".ods"}},
	{Name: "Presentations", Extensions: []string{".pptx", ".odp", ".key"}},
	{Name: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".tiff"}},
	{Name: "Videos", Extensions: []string{".mp4", ".mkv", ".avi", ".mov", ".webm", ".flv", ".wmv"}},
	{Name: "Audio", Extensions: []string{".mp3", ".wav", ".aac", ".ogg", ".flac"}},
	{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".tar.gz"}},
	{Name: "Executables", Extensions: []string{".exe", ".msi", ".sh", ".bat", ".AppImage"}},
	{Name: "Code", Extensions: []string{".js", ".py", ".rs", ".cpp", ".java", ".html", ".css", ".json", ".ts"}},
	{Name: "Folders", Extensions: []string{FolderKey}},
}

// DefaultKey pairs a normalized mapping key with its category name.
type DefaultKey struct {
	Key      string
	Category string
}

// DefaultKeys flattens DefaultGroups into normalized keys in table order.
func DefaultKeys() []DefaultKey {
	var keys []DefaultKey
	for _, group := range DefaultGroups {
		for _, ext := range group.Extensions {
			keys = append(keys, DefaultKey{Key: NormalizeKey(ext), Category: group.Name})
		}
	}
	return keys
}

// CategoryFor returns the default category name for key, if any.
func CategoryFor(key string) (string, bool) {
	key = NormalizeKey(key)
	for _, group := range DefaultGroups {
		for _, ext := range group.Extensions {
			if NormalizeKey(ext) == key {
				return group.Name, true
			}
		}
	}
	return "", false
}
