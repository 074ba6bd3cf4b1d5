package strategy

// SortStrategy is the strategy interface: one sorting algorithm.
// Sort orders data in place.
type SortStrategy interface {
	Name() string
	Sort(data []int)
}

// Bubble is the bubble sort strategy. Quadratic, but stable and branch-simple.
type Bubble struct{}

func (Bubble) Name() string { return "Bubble Sort" }

func (Bubble) Sort(data []int) {
	for i := 0; i < len(data); i++ {
		swapped := false
		for j := 0; j < len(data)-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Merge is the merge sort strategy. O(n log n), stable, allocates a scratch slice.
type Merge struct{}

func (Merge) Name() string { return "Merge Sort" }

func (m Merge) Sort(data []int) {
	if len(data) < 2 {
		return
	}
	mid := len(data) / 2
	left := append([]int(nil), data[:mid]...)
	right := append([]int(nil), data[mid:]...)
	m.Sort(left)
	m.Sort(right)

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			data[k] = left[i]
			i++
		} else {
			data[k] = right[j]
			j++
		}
		k++
	}
	for ; i < len(left); i, k = i+1, k+1 {
		data[k] = left[i]
	}
	for ; j < len(right); j, k = j+1, k+1 {
		data[k] = right[j]
	}
}

// Quick is the quicksort strategy. O(n log n) expected, in place, not stable.
type Quick struct{}

func (Quick) Name() string { return "Quick Sort" }

func (q Quick) Sort(data []int) {
	if len(data) < 2 {
		return
	}
	pivot := data[len(data)/2]
	left, right := 0, len(data)-1
	for left <= right {
		for data[left] < pivot {
			left++
		}
		for data[right] > pivot {
			right--
		}
		if left <= right {
			data[left], data[right] = data[right], data[left]
			left++
			right--
		}
	}
	q.Sort(data[:right+1])
	q.Sort(data[left:])
}
