package services

import (
	"sort"
	"strings"

	"hms/dto"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// normalizeInput bỏ dấu và chuyển về chữ thường để so khớp tên
func normalizeInput(input string) string {
	return strings.ToLower(unidecode.Unidecode(input))
}

// createMatcher tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi theo
// khoảng cách levenshtein
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SearchCustomersByName tìm customer theo tên: khớp chuỗi con trên tên đã
// bỏ dấu trước, sau đó dùng closestmatch gợi ý tên gần nhất cho các truy
// vấn gõ sai. Kết quả xếp theo độ tương đồng giảm dần.
func (s *HotelService) SearchCustomersByName(query string) []dto.CustomerMatchResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return nil
	}

	var matches []dto.CustomerMatchResponse
	names := make([]string, 0, len(s.customers))

	for _, c := range s.customers {
		normalizedName := normalizeInput(c.Name)
		names = append(names, normalizedName)

		if strings.Contains(normalizedName, normalizedQuery) {
			matches = append(matches, dto.CustomerMatchResponse{
				Customer:   c,
				Similarity: calculateSimilarity(normalizedQuery, normalizedName),
			})
		}
	}

	// Không khớp chuỗi con nào thì thử gợi ý tên gần nhất
	if len(matches) == 0 && len(names) > 0 {
		cm := createMatcher(names)
		closest := cm.Closest(normalizedQuery)

		for _, c := range s.customers {
			if normalizeInput(c.Name) != closest {
				continue
			}
			similarity := calculateSimilarity(normalizedQuery, closest)
			if similarity >= 0.4 {
				matches = append(matches, dto.CustomerMatchResponse{
					Customer:   c,
					Similarity: similarity,
				})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}
