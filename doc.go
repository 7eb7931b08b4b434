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

// Package scel implements a library for reading pinyin input method
// dictionaries in pure Go.
//
// Sogou .scel and QQ .qcel cell dictionaries are binary files with three
// parts:
//  1. A fixed size header with the dictionary's name, category, description
//     and sample words. See package header.
//  2. A pinyin syllable table at offset 0x1540. See package pinyin.
//  3. A word table of homophone groups that refer to the pinyin table by
//     index. See package words.
//
// Plain text word lists (.txt) are also supported. See package txt.
//
// The format has no public specification. Decoding is lenient: truncated or
// malformed data yields the words read up to that point rather than an
// error.
package scel
