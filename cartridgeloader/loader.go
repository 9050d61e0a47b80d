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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/pkg/errors"
)

// Sentinal error patterns.
const (
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "cartridgeloader: unexpected hash value (%s)"
	NoData            = "cartridgeloader: no data (%s)"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".GB", ".GBC", ".BIN", ".ROM"}

// Loader is used to specify the cartridge to use when attaching to the
// emulation.
type Loader struct {
	// filename of cartridge to load. can be a local file or a HTTP URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The data is not loaded until Load() is called.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData creates a Loader for data that is already in memory. The
// name argument is used in place of a filename.
func NewLoaderFromData(name string, data []byte) Loader {
	return Loader{
		Filename: name,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		Data:     data,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// IsRecognised returns true if the filename has an extension listed in
// FileExtensions. Files with other extensions can still be loaded.
func (cl Loader) IsRecognised() bool {
	ext := strings.ToUpper(filepath.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
//
// Calling Load() when data has already been loaded does nothing.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && len(u.Scheme) > 1 {
		// single letter schemes are windows drive letters
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return errors.Wrap(err, "cartridgeloader")
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("cartridgeloader: %s: %s", cl.Filename, resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "cartridgeloader")
		}

	case "file":
		cl.Data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))
		if err != nil {
			return errors.Wrap(err, "cartridgeloader")
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	if len(cl.Data) == 0 {
		return curated.Errorf(NoData, cl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash

	return nil
}
