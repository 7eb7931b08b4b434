// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pinyin implements reading the pinyin syllable table of .scel
// files.
//
// The table starts at offset 0x1540 with a 32-bit little-endian record
// count. Note that this is a count of records and not a byte length. Each
// record comes in three parts:
//  1. The index: a 16-bit little-endian syllable index.
//  2. The length: the 16-bit little-endian byte length of the syllable.
//  3. The syllable: UTF-16LE text.
//
// Word records in the word table refer to syllables by their index.
package pinyin
