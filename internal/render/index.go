package render

import (
	"fmt"
	"io"
	"sort"
	"time"

	"code2md/internal/project"
)

// IndexFileName is the fixed name of the cross-project index document.
const IndexFileName = "INDEX.md"

// RenderIndex writes the cross-project index: a title, the generation time,
// the project count, and a name-sorted bullet list linking each project to
// its document.
func RenderIndex(w io.Writer, infos []*project.Info, generatedAt time.Time) {
	fmt.Fprintln(w, "# Project Index")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "**Generated**: %s\n", generatedAt.Format(timeLayout))
	fmt.Fprintf(w, "**Projects**: %d\n", len(infos))
	fmt.Fprintln(w)

	if len(infos) == 0 {
		return
	}

	sorted := make([]*project.Info, len(infos))
	copy(sorted, infos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	fmt.Fprintln(w, "## Projects")
	fmt.Fprintln(w)
	for _, info := range sorted {
		fmt.Fprintf(w, "- [%s](%s.md)\n", info.Name, project.NormalizeName(info.Name))
	}
	fmt.Fprintln(w)
}
