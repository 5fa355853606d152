// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2024 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package testutil

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"gopkg.in/check.v1"
)

type containsChecker struct {
	*check.CheckerInfo
}

// Contains is a Checker that looks for a needle in a haystack.
// The needle can be any object. The haystack can be an array, slice or string.
var Contains check.Checker = &containsChecker{
	&check.CheckerInfo{Name: "Contains", Params: []string{"haystack", "needle"}},
}

func (c *containsChecker) Check(params []interface{}, names []string) (result bool, error string) {
	defer func() {
		if v := recover(); v != nil {
			result = false
			error = fmt.Sprint(v)
		}
	}()
	var haystack interface{} = params[0]
	var needle interface{} = params[1]
	switch haystackV := reflect.ValueOf(haystack); haystackV.Kind() {
	case reflect.Slice, reflect.Array:
		// Ensure that type of elements in haystack is compatible with needle
		if needleV := reflect.ValueOf(needle); haystackV.Type().Elem() != needleV.Type() {
			panic(fmt.Sprintf("haystack contains items of type %s but needle is a %s",
				haystackV.Type().Elem(), needleV.Type()))
		}
		for len, i := haystackV.Len(), 0; i < len; i++ {
			itemV := haystackV.Index(i)
			if itemV.Interface() == needle {
				return true, ""
			}
		}
		return false, ""
	case reflect.String:
		needleStr, ok := needle.(string)
		if !ok {
			panic(fmt.Sprintf("needle is not a string (%T)", needle))
		}
		return strings.Contains(haystackV.String(), needleStr), ""
	default:
		panic(fmt.Sprintf("expected a string, slice or array, got %T", haystack))
	}
}

type filePresentChecker struct {
	*check.CheckerInfo
}

// FilePresent verifies that the given file exists.
var FilePresent check.Checker = &filePresentChecker{
	&check.CheckerInfo{Name: "FilePresent", Params: []string{"filename"}},
}

func (c *filePresentChecker) Check(params []interface{}, names []string) (result bool, error string) {
	filename, ok := params[0].(string)
	if !ok {
		return false, "filename must be a string"
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return false, fmt.Sprintf("file %q is absent but should exist", filename)
	}
	return true, ""
}

type fileAbsentChecker struct {
	*check.CheckerInfo
}

// FileAbsent verifies that the given file does not exist.
var FileAbsent check.Checker = &fileAbsentChecker{
	&check.CheckerInfo{Name: "FileAbsent", Params: []string{"filename"}},
}

func (c *fileAbsentChecker) Check(params []interface{}, names []string) (result bool, error string) {
	filename, ok := params[0].(string)
	if !ok {
		return false, "filename must be a string"
	}
	if _, err := os.Stat(filename); !os.IsNotExist(err) {
		return false, fmt.Sprintf("file %q is present but should not exist", filename)
	}
	return true, ""
}

type fileEqualsChecker struct {
	*check.CheckerInfo
}

// FileEquals verifies that the given file's contents equal the given
// string or byte slice.
var FileEquals check.Checker = &fileEqualsChecker{
	&check.CheckerInfo{Name: "FileEquals", Params: []string{"filename", "contents"}},
}

func (c *fileEqualsChecker) Check(params []interface{}, names []string) (result bool, error string) {
	filename, ok := params[0].(string)
	if !ok {
		return false, "filename must be a string"
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return false, fmt.Sprintf("cannot read file %q: %v", filename, err)
	}
	switch want := params[1].(type) {
	case string:
		if string(content) != want {
			return false, fmt.Sprintf("failed to match with file contents:\n%s", content)
		}
	case []byte:
		if string(content) != string(want) {
			return false, "failed to match with file contents:\n<binary data>"
		}
	default:
		return false, fmt.Sprintf("contents must be a string or []byte (got %T)", params[1])
	}
	return true, ""
}

type fileContainsChecker struct {
	*check.CheckerInfo
}

// FileContains verifies that the given file's contents contain the given
// substring.
var FileContains check.Checker = &fileContainsChecker{
	&check.CheckerInfo{Name: "FileContains", Params: []string{"filename", "contents"}},
}

func (c *fileContainsChecker) Check(params []interface{}, names []string) (result bool, error string) {
	filename, ok := params[0].(string)
	if !ok {
		return false, "filename must be a string"
	}
	substring, ok := params[1].(string)
	if !ok {
		return false, "contents must be a string"
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return false, fmt.Sprintf("cannot read file %q: %v", filename, err)
	}
	if !strings.Contains(string(content), substring) {
		return false, fmt.Sprintf("failed to match with file contents:\n%s", content)
	}
	return true, ""
}
