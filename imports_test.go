package main

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/exp/slices"
)

// importGroups splits a file's imports into blank-line separated groups.
func importGroups(path string) [][]string {
	fset := token.NewFileSet()
	file := lo.Must(parser.ParseFile(fset, path, nil, parser.ImportsOnly))

	var (
		groups   [][]string
		lastLine = -2
	)
	for _, spec := range file.Imports {
		line := fset.Position(spec.Pos()).Line
		if line != lastLine+1 {
			groups = append(groups, nil)
		}
		lastLine = line
		groups[len(groups)-1] = append(groups[len(groups)-1], lo.Must(strconv.Unquote(spec.Path.Value)))
	}

	return groups
}

func TestImportOrder(t *testing.T) {
	Convey("Every import group is sorted by path", t, func() {
		lo.Must0(filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && strings.HasPrefix(d.Name(), "_") {
				return filepath.SkipDir
			}
			if d.IsDir() || filepath.Ext(path) != ".go" {
				return nil
			}

			for _, group := range importGroups(path) {
				So(slices.IsSorted(group), ShouldBeTrue)
			}
			return nil
		}))
	})
}
