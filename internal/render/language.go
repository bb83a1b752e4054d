package render

import "strings"

// languageByExtension maps file extensions to the fence label used for code
// blocks. Unknown extensions fall back to "text".
var languageByExtension = map[string]string{
	".c":     "c",
	".h":     "c",
	".cpp":   "cpp",
	".hpp":   "cpp",
	".cc":    "cpp",
	".cxx":   "cpp",
	".py":    "python",
	".java":  "java",
	".js":    "javascript",
	".ts":    "typescript",
	".cs":    "csharp",
	".go":    "go",
	".rs":    "rust",
	".php":   "php",
	".rb":    "ruby",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".clj":   "clojure",
	".hs":    "haskell",
	".ml":    "ocaml",
	".asm":   "assembly",
	".s":     "assembly",
	".a51":   "assembly",
}

// LanguageForExtension returns the syntax label for a file extension.
func LanguageForExtension(ext string) string {
	if lang, ok := languageByExtension[strings.ToLower(ext)]; ok {
		return lang
	}
	return "text"
}
