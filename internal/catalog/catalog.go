package catalog

import "sort"

// Benchmark identifies a single benchmark program and the category it is
// grouped under for reporting.
type Benchmark struct {
	Name     string
	Category string
}

// Benchmarks is the closed registry of benchmark programs. New entries are
// added here; the list is never loaded from disk.
var Benchmarks = []Benchmark{
	// Computational
	{"01_fibonacci", "computational"},
	{"02_primes_sieve", "computational"},
	{"03_factorial", "computational"},
	{"04_gcd_lcm", "computational"},
	{"05_collatz", "computational"},
	{"06_ackermann", "computational"},

	// Loop performance
	{"07_loop_sum", "loop"},
	{"08_nested_loops", "loop"},
	{"09_loop_unroll", "loop"},
	{"10_countdown", "loop"},

	// Arithmetic
	{"11_int_arithmetic", "arithmetic"},
	{"12_mixed_ops", "arithmetic"},
	{"13_division_heavy", "arithmetic"},
	{"14_multiply_chain", "arithmetic"},
	{"15_modulo_ops", "arithmetic"},

	// Bitwise
	{"16_bit_count", "bitwise"},
	{"17_bit_reverse", "bitwise"},
	{"18_bit_shift", "bitwise"},
	{"19_xor_swap", "bitwise"},
	{"20_power_of_two", "bitwise"},

	// Function calls
	{"21_recursion_deep", "function"},
	{"22_tail_recursion", "function"},
	{"23_mutual_recursion", "function"},
	{"24_function_chain", "function"},

	// Array / memory
	{"25_array_sum", "memory"},
	{"26_array_copy", "memory"},
	{"27_matrix_mult", "memory"},
	{"28_bubble_sort", "memory"},
	{"29_binary_search", "memory"},
	{"30_memory_throughput", "memory"},
}

// Filter returns the benchmarks belonging to the given category, or all
// benchmarks when category is empty. Registry order is preserved.
func Filter(category string) []Benchmark {
	if category == "" {
		return append([]Benchmark(nil), Benchmarks...)
	}
	var out []Benchmark
	for _, b := range Benchmarks {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// Categories returns the distinct category tags in lexicographic order.
func Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, b := range Benchmarks {
		if !seen[b.Category] {
			seen[b.Category] = true
			cats = append(cats, b.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// IsKnownCategory reports whether category appears in the registry.
func IsKnownCategory(category string) bool {
	for _, b := range Benchmarks {
		if b.Category == category {
			return true
		}
	}
	return false
}
