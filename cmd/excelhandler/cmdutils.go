/*
Copyright © 2026 Sina Karimi
Distributed under the MIT License.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	excelhandler "github.com/sina-karimi-93/microsoft-excel-handler"
	"github.com/sina-karimi-93/microsoft-excel-handler/backend"
	"github.com/sina-karimi-93/microsoft-excel-handler/logger"
)

//
// pickBackend selects the engine for path, honoring the text-file options
// from the config file
//
func pickBackend(path string) (excelhandler.Backend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		var comma rune
		if d := viper.GetString("delimiter"); d != "" {
			comma = []rune(d)[0]
		}
		return backend.CSV{Comma: comma, Encoding: viper.GetString("encoding")}, nil
	}
	return backend.ForPath(path)
}

//
// handlerOptions assembles the session options from the flags and the
// config file
//
func handlerOptions() excelhandler.Options {
	opts := excelhandler.DefaultOptions()
	if n := viper.GetInt("max-scan-rows"); n > 0 {
		opts.MaxScanRows = n
	}
	if n := viper.GetInt("max-scan-cols"); n > 0 {
		opts.MaxScanCols = n
	}

	log := logger.New(os.Stderr)
	if verbose {
		log.SetLevel(logger.TraceLevel)
	}
	opts.Logger = log

	return opts
}

//
// openSheet opens the workbook at path and binds the sheet from the --sheet
// flag, falling back to the config file and then to the first sheet. On a
// bad sheet name it suggests the nearest stored one and, unless in script
// mode, offers the full list to pick from.
//
func openSheet(path string) (*excelhandler.Handler, error) {
	b, err := pickBackend(path)
	if err != nil {
		return nil, err
	}

	h := excelhandler.New(b, handlerOptions())
	name := sheetName
	if name == "" {
		name = viper.GetString("sheet")
	}

	err = h.Open(path, name)
	if err == nil {
		return h, nil
	}

	if errors.Cause(err) == excelhandler.ErrSheetNotFound {
		names, lerr := h.SheetNames()
		if lerr == nil && len(names) > 0 {
			if near := nearestSheet(name, names); near != "" {
				fmt.Printf("[!] sheet %q not found, did you mean %q?\n", name, near)
			}
			if !scriptMode {
				if pick := promptUser(names, "Select a sheet"); pick != "" {
					if perr := h.SetSheet(pick); perr == nil {
						return h, nil
					}
				}
			}
		}
	}

	h.Close()
	return nil, err
}

//
// promptUser presents a navigable list to be selected on CLI
//
func promptUser(list []string, label string) (result string) {
	templates := &promptui.SelectTemplates{
		Help: `{{ "Use these keys to navigate:" | faint }} {{ .NextKey | faint }} ` +
			`{{ .PrevKey | faint }} {{ .PageDownKey | faint }} {{ .PageUpKey | faint }} ` +
			`{{ if .Search }} {{ "and" | faint }} {{ .SearchKey | faint }} {{ "toggles search" | faint }}{{ end }}`,
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     list,
		Templates: templates,
	}

	_, result, err := prompt.Run()

	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	return
}

//
// outFilename cleans up the filename and returns path/name.ext, deviating
// to name(1).ext and so on while the file already exists
//
func outFilename(path, name, ext string) (fpath string, err error) {
	clean := func(r rune) rune {
		switch r {
		case ' ', ',', '/', '\\':
			return '_'
		}
		return r
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = "."
	}
	name = strings.TrimSuffix(name, ".")
	name = strings.Map(clean, name)
	fpath = filepath.FromSlash(path + "/" + name + "." + ext)

	const max = 50
	var x int
	for x = 1; x <= max; x++ {
		_, err = os.Stat(fpath)
		if err == nil {
			// File exists, try again with another name
			fpath = fmt.Sprintf("%s/%s(%d).%s", path, name, x, ext)
		} else if os.IsNotExist(err) {
			err = nil // reset error
			break
		} else {
			err = fmt.Errorf("file %s stat error: %v", fpath, err)
			return
		}
	}

	if x > max {
		err = fmt.Errorf("remove the file %s/%s.%s before continuing", path, name, ext)
		return
	}

	return
}
