// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopherboy/paths"
	"github.com/jetsetilly/gopherboy/test"
)

func TestPaths(t *testing.T) {
	// the base resource path is used if it exists in the current directory
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopherboy", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy/foo/bar/baz")

	// directory has been created
	_, err = os.Stat(".gopherboy/foo/bar")
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherboy")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "TETRIS")
	test.ExpectEquality(t, len(fn), len("memviz_TETRIS_YYYYMMDD_HHMMSS"))

	fn = paths.UniqueFilename("memviz", "  ")
	test.ExpectEquality(t, len(fn), len("memviz_YYYYMMDD_HHMMSS"))
}
