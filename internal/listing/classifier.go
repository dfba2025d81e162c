package listing

import "filegrip/internal/domain"

var categoryByExt = map[string]domain.FileCategory{}

func init() {
	register := func(cat domain.FileCategory, exts ...string) {
		for _, ext := range exts {
			categoryByExt[ext] = cat
		}
	}

	register(domain.CategoryImage,
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg", ".webp", ".ico",
		".psd", ".tiff", ".raw", ".heic")
	register(domain.CategoryDocument,
		".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".txt",
		".rtf", ".odt", ".ods", ".odp", ".epub")
	register(domain.CategoryVideo,
		".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v",
		".mpeg", ".mpg", ".3gp")
	register(domain.CategoryAudio,
		".mp3", ".wav", ".flac", ".aac", ".m4a", ".wma", ".ogg", ".opus",
		".aiff")
	register(domain.CategoryArchive,
		".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".iso")
	register(domain.CategoryCode,
		".py", ".js", ".ts", ".tsx", ".jsx", ".html", ".css", ".scss",
		".java", ".cpp", ".c", ".h", ".cs", ".rs", ".go", ".rb", ".php",
		".swift", ".kt", ".json", ".xml", ".yaml", ".yml", ".toml", ".md",
		".sh", ".bash", ".zsh", ".sql", ".lua", ".vim", ".vue", ".svelte")
}

// Classify maps a lowercase extension (with leading dot) to a category.
func Classify(ext string) domain.FileCategory {
	if cat, ok := categoryByExt[ext]; ok {
		return cat
	}
	return domain.CategoryOther
}
