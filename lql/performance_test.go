/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lql

import "testing"

func BenchmarkParseSimpleQuery(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse("error | json | count by host"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseComplexQuery(b *testing.B) {
	query := `error "dial timeout" | json from payload | parse "* [*] *" as ts, level, msg nodrop | where status >= 500 | count, p95(latency) as slow by endpoint, region | sort by slow desc`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(query); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseExpr(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := NewParser("status_code >= 500").parseExpr(0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseError(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse("* | jsann"); err == nil {
			b.Fatal("expected error")
		}
	}
}
