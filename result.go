// Copyright 2024 Aerospike, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataproc

const (
	// StatusKey is the only key of a Result.
	StatusKey = "status"
	// StatusOK is the value stored under StatusKey.
	StatusOK = "ok"
)

// Result is the record returned by ProcessData when the input exists.
type Result map[string]string

// NewResult returns a new {"status": "ok"} record.
func NewResult() Result {
	return Result{StatusKey: StatusOK}
}

// Status returns the status value, or an empty string for a nil Result.
func (r Result) Status() string {
	return r[StatusKey]
}
