package main

import (
	"log"
	"os"

	"maum-baedal-be/internal/model"
	"maum-baedal-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding Question Pool...")

	questions := []model.Question{
		// 일상 (daily life)
		{Content: "오늘 가장 기뻤던 순간은 언제였나요?", Category: "일상", IsActive: true},
		{Content: "요즘 아침에 일어나면 제일 먼저 하는 일은 무엇인가요?", Category: "일상", IsActive: true},
		{Content: "최근에 새로 생긴 습관이 있다면 무엇인가요?", Category: "일상", IsActive: true},

		// 추억 (memories)
		{Content: "어릴 적 가장 좋아했던 놀이는 무엇이었나요?", Category: "추억", IsActive: true},
		{Content: "우리 가족과 함께한 여행 중 가장 기억에 남는 곳은 어디인가요?", Category: "추억", IsActive: true},
		{Content: "다시 돌아가고 싶은 순간이 있다면 언제인가요?", Category: "추억", IsActive: true},

		// 음식 (food)
		{Content: "어머니(아버지)의 요리 중 가장 그리운 음식은 무엇인가요?", Category: "음식", IsActive: true},
		{Content: "요즘 가장 자주 먹는 음식은 무엇인가요?", Category: "음식", IsActive: true},

		// 감정 (feelings)
		{Content: "최근에 눈물이 날 뻔했던 순간이 있었나요?", Category: "감정", IsActive: true},
		{Content: "요즘 가장 큰 걱정거리는 무엇인가요?", Category: "감정", IsActive: true},
		{Content: "고맙다고 말하고 싶었지만 못했던 사람이 있나요?", Category: "감정", IsActive: true},

		// 꿈 (dreams)
		{Content: "지금 나이에 새로 도전해 보고 싶은 것이 있다면 무엇인가요?", Category: "꿈", IsActive: true},
		{Content: "어렸을 때 꿈꾸던 직업은 무엇이었나요?", Category: "꿈", IsActive: true},

		// 가족 (family)
		{Content: "우리 가족만의 특별한 전통이나 규칙이 있나요?", Category: "가족", IsActive: true},
		{Content: "가족에게 가장 듣고 싶은 말은 무엇인가요?", Category: "가족", IsActive: true},
		{Content: "가족이 모르는 나만의 비밀이 하나 있다면요?", Category: "가족", IsActive: true},

		// 계절 (seasons)
		{Content: "이번 계절에 꼭 해보고 싶은 일이 있나요?", Category: "계절", IsActive: true},
		{Content: "가장 좋아하는 계절과 그 이유는 무엇인가요?", Category: "계절", IsActive: true},

		// 취향 (tastes)
		{Content: "요즘 즐겨 듣는 노래가 있다면 무엇인가요?", Category: "취향", IsActive: true},
		{Content: "최근에 본 것 중 가장 재미있었던 영화나 드라마는 무엇인가요?", Category: "취향", IsActive: true},

		// 건강 (health)
		{Content: "건강을 위해 요즘 챙기고 있는 것이 있나요?", Category: "건강", IsActive: true},
		{Content: "요즘 잠은 잘 주무시나요? 숙면의 비결이 있다면요?", Category: "건강", IsActive: true},

		// 미래 (future)
		{Content: "10년 뒤 우리 가족은 어떤 모습일까요?", Category: "미래", IsActive: true},
		{Content: "올해가 가기 전에 꼭 이루고 싶은 일은 무엇인가요?", Category: "미래", IsActive: true},
	}

	for _, q := range questions {
		var existing model.Question
		if err := db.Where("content = ?", q.Content).First(&existing).Error; err == nil {
			log.Printf("Question already exists, skipping: %s", q.Content)
			continue
		}

		if err := db.Create(&q).Error; err != nil {
			log.Printf("Error creating question: %v", err)
		} else {
			log.Printf("Created question [%s]: %s", q.Category, q.Content)
		}
	}

	log.Println("Question seeding completed!")

	log.Println("Seeding Notification Types...")
	SeedNotificationTypes(db)

	log.Println("✅ Seeding completed!")
}
