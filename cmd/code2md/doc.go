// # code2md
//
// `code2md` turns a directory of source-code projects into structured Markdown
// documentation. It scans a code directory for projects, renders one Markdown
// document per project, and writes an `INDEX.md` linking them all.
//
// Key capabilities:
//
//   - discover projects automatically: any directory containing a recognized
//     code or project file qualifies, including projects nested one level
//     inside dated batch directories.
//   - embed an indented file tree per project using box-drawing connectors,
//     with ignored files and directories filtered out.
//   - count files per category (code, header, project, other) and total size.
//   - embed code file contents in syntax-tagged fenced blocks, with a
//     multi-encoding fallback chain (UTF-8, GBK, GB18030, UTF-16, Latin-1)
//     for legacy sources and a size cap for large files.
//   - normalize dated project names (`Foo_20230615` becomes `Foo`) when
//     deriving output filenames.
//
// ## Usage
//
//	code2md [flags]
//
// Examples:
//
//   - Convert every project under ./Code into ./Markdown:
//
//     code2md
//
//   - Convert a single project by name fragment:
//
//     code2md --project SC92F7003
//
//   - Skip file contents, keep structure and statistics:
//
//     code2md --no-content
//
//   - Use custom directories and a larger embed limit:
//
//     code2md --code-dir src --markdown-dir docs --max-file-size 4MB
//
// ## Configuration
//
// Settings layer as flags > CODE2MD_* environment variables > config file >
// defaults. `code2md init` writes the defaults to `.code2md.yaml` for editing.
//
// ## Exit Codes
//
// 0 when every discovered project converts successfully; 1 when the code
// directory is missing, no projects are found, or any project fails.
package main
