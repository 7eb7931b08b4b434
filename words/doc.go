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

// Package words implements reading the word table of .scel files.
//
// The word table immediately follows the pinyin table and is a sequence of
// homophone groups. Each group comes in three parts:
//  1. The homophone count: a 16-bit little-endian number of words sharing
//     the group's pinyin. A zero count ends the table.
//  2. The pinyin: a 16-bit little-endian byte length followed by a list of
//     16-bit little-endian pinyin table indices.
//  3. The words: for each word, a 16-bit little-endian byte length, the
//     UTF-16LE word, a 16-bit little-endian extension block length and the
//     extension block. Extension blocks of at least 4 bytes begin with a
//     16-bit little-endian weight.
//
// All integers are unsigned.
package words
