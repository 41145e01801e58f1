package respond

import (
	"context"
	"fmt"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
)

// TemplateGenerator is the deterministic bilingual ResponseGenerator. It is
// the reply path when no LLM generator is configured and the degradation
// path when the LLM one fails, so it must never error.
type TemplateGenerator struct {
	prompt model.PromptConfig
}

func NewTemplateGenerator(prompt model.PromptConfig) *TemplateGenerator {
	return &TemplateGenerator{prompt: prompt}
}

var faqAnswersID = map[string]string{
	model.FaqTopicLocation: "Toko kami berada di Jl. Kayu Manis No. 12, Jakarta Selatan.",
	model.FaqTopicHours:    "Kami buka setiap hari pukul 09.00-21.00 WIB.",
	model.FaqTopicDelivery: "Kami melayani pengiriman ke seluruh Indonesia, estimasi 3-7 hari kerja.",
	model.FaqTopicPayment:  "Kami menerima transfer bank, kartu kredit, dan pembayaran digital.",
}

var faqAnswersEN = map[string]string{
	model.FaqTopicLocation: "Our store is at Jl. Kayu Manis No. 12, South Jakarta.",
	model.FaqTopicHours:    "We are open every day from 9 AM to 9 PM.",
	model.FaqTopicDelivery: "We deliver across Indonesia, typically within 3-7 business days.",
	model.FaqTopicPayment:  "We accept bank transfer, credit cards, and digital payments.",
}

func (t *TemplateGenerator) Generate(_ context.Context, gc model.GenerateContext) (*model.GeneratedResponse, error) {
	if gc.Language == model.LanguageEN {
		return t.english(gc), nil
	}
	return t.indonesian(gc), nil
}

func (t *TemplateGenerator) indonesian(gc model.GenerateContext) *model.GeneratedResponse {
	switch gc.Intent {
	case model.IntentGreeting:
		return &model.GeneratedResponse{
			Intro:    fmt.Sprintf("Halo! Selamat datang di %s.", t.prompt.StoreName),
			FollowUp: "Ada furnitur yang sedang Anda cari?",
		}
	case model.IntentHelp:
		return &model.GeneratedResponse{
			Intro:    "Saya bisa membantu mencari produk, menyaring berdasarkan warna, bahan, atau harga, dan menjawab pertanyaan tentang toko.",
			FollowUp: "Mau mulai dari kategori apa?",
		}
	case model.IntentFaqInfo:
		if ans, ok := faqAnswersID[gc.FaqTopic]; ok {
			return &model.GeneratedResponse{
				Intro:    ans,
				FollowUp: "Ada lagi yang ingin Anda tanyakan?",
			}
		}
		return &model.GeneratedResponse{
			Intro:    "Silakan tanyakan tentang lokasi, jam buka, pengiriman, atau pembayaran.",
			FollowUp: "Ada yang ingin Anda tanyakan?",
		}
	case model.IntentProductInfo:
		if gc.ProductCount > 0 {
			return &model.GeneratedResponse{
				Intro:    fmt.Sprintf("Berikut detail %d produk dari pencarian terakhir Anda.", gc.ProductCount),
				FollowUp: "Mau saya bantu bandingkan atau cari yang lain?",
			}
		}
		return &model.GeneratedResponse{
			Intro:    "Belum ada hasil pencarian yang bisa saya tampilkan detailnya.",
			FollowUp: "Mau cari produk dulu?",
		}
	case model.IntentFilterClear:
		return &model.GeneratedResponse{
			Intro:    "Baik, semua filter sudah saya hapus.",
			FollowUp: "Mau lanjut mencari apa?",
		}
	case model.IntentReset:
		return &model.GeneratedResponse{
			Intro:    "Baik, percakapan sudah saya mulai dari awal.",
			FollowUp: "Ada yang bisa saya bantu cari?",
		}
	}

	if gc.ProductCount > 0 {
		return &model.GeneratedResponse{
			Intro:    fmt.Sprintf("Saya menemukan %d produk untuk \"%s\".", gc.ProductCount, gc.SearchQuery),
			FollowUp: "Mau saya saring lagi berdasarkan warna, bahan, atau harga?",
		}
	}
	return &model.GeneratedResponse{
		Intro:    fmt.Sprintf("Maaf, saya tidak menemukan produk untuk \"%s\".", gc.SearchQuery),
		FollowUp: "Mau coba longgarkan filternya atau cari kategori lain?",
	}
}

func (t *TemplateGenerator) english(gc model.GenerateContext) *model.GeneratedResponse {
	switch gc.Intent {
	case model.IntentGreeting:
		return &model.GeneratedResponse{
			Intro:    fmt.Sprintf("Hello! Welcome to %s.", t.prompt.StoreName),
			FollowUp: "Is there any furniture you are looking for?",
		}
	case model.IntentHelp:
		return &model.GeneratedResponse{
			Intro:    "I can help you search for products, narrow down by color, material, or price, and answer questions about the store.",
			FollowUp: "Which category would you like to start with?",
		}
	case model.IntentFaqInfo:
		if ans, ok := faqAnswersEN[gc.FaqTopic]; ok {
			return &model.GeneratedResponse{
				Intro:    ans,
				FollowUp: "Is there anything else you would like to know?",
			}
		}
		return &model.GeneratedResponse{
			Intro:    "Feel free to ask about our location, opening hours, delivery, or payment options.",
			FollowUp: "What would you like to know?",
		}
	case model.IntentProductInfo:
		if gc.ProductCount > 0 {
			return &model.GeneratedResponse{
				Intro:    fmt.Sprintf("Here are the details for the %d products from your last search.", gc.ProductCount),
				FollowUp: "Would you like to compare them or search for something else?",
			}
		}
		return &model.GeneratedResponse{
			Intro:    "There are no search results to show details for yet.",
			FollowUp: "Shall we search for a product first?",
		}
	case model.IntentFilterClear:
		return &model.GeneratedResponse{
			Intro:    "Done, I have cleared all filters.",
			FollowUp: "What would you like to search for next?",
		}
	case model.IntentReset:
		return &model.GeneratedResponse{
			Intro:    "Done, the conversation has been restarted.",
			FollowUp: "Is there anything I can help you find?",
		}
	}

	if gc.ProductCount > 0 {
		return &model.GeneratedResponse{
			Intro:    fmt.Sprintf("I found %d products for \"%s\".", gc.ProductCount, gc.SearchQuery),
			FollowUp: "Would you like to narrow down by color, material, or price?",
		}
	}
	return &model.GeneratedResponse{
		Intro:    fmt.Sprintf("Sorry, I could not find any products for \"%s\".", gc.SearchQuery),
		FollowUp: "Would you like to loosen a filter or try another category?",
	}
}

var _ model.ResponseGenerator = (*TemplateGenerator)(nil)
