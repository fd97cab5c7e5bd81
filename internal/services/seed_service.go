package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/database"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"gorm.io/gorm"
)

/*
SeedService 种子数据服务

主要功能：
1. 创建默认账户（admin / member / reader）
2. 导入示例新闻和评论

计票基线故意比评论投出的票少：一部分票是"无评论投票"，
计数字段只在基线上做增量，永远不从评论重新汇总。
*/

type SeedService struct {
	db *gorm.DB
}

// NewSeedService 创建新的种子数据服务实例
func NewSeedService() *SeedService {
	return &SeedService{
		db: database.GetDB(),
	}
}

// SeedAllData 初始化默认用户和示例新闻
func (s *SeedService) SeedAllData() error {
	if s.db == nil {
		return errors.New("database connection not initialized")
	}

	if err := s.seedDefaultUsers(); err != nil {
		return err
	}

	return s.seedSampleNews()
}

type seedUser struct {
	username     string
	email        string
	firstname    string
	lastname     string
	password     string
	profileImage string
	role         string
}

func (s *SeedService) seedDefaultUsers() error {
	defaults := []seedUser{
		{"admin", "admin@realcheck.io", "Admin", "User", "admin1234", "https://i.pravatar.cc/150?u=admin", models.RoleAdmin},
		{"member", "member@realcheck.io", "Member", "User", "member1234", "https://i.pravatar.cc/150?u=member", models.RoleMember},
		{"reader", "reader@realcheck.io", "Reader", "User", "reader1234", "https://i.pravatar.cc/150?u=reader", models.RoleReader},
	}

	for _, d := range defaults {
		var existing models.User
		err := s.db.Where("username = ?", d.username).First(&existing).Error
		if err == nil {
			continue // 已存在，跳过
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check user %s: %w", d.username, err)
		}

		user := &models.User{
			Username:     d.username,
			Email:        d.email,
			Firstname:    d.firstname,
			Lastname:     d.lastname,
			ProfileImage: d.profileImage,
			Role:         d.role,
			Status:       "active",
		}
		if err := user.SetPassword(d.password); err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", d.username, err)
		}
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", d.username, err)
		}
		log.Printf("seeded user: %s (%s)", d.username, d.role)
	}

	return nil
}

type seedComment struct {
	username string
	text     string
	vote     models.VoteValue
	age      time.Duration // 相对新闻发布时间
}

type seedNews struct {
	topic       string
	shortDetail string
	fullDetail  string
	image       string
	reporter    string
	dateTime    time.Time
	// 无评论投票的基线，评论的票在此基础上累加
	baseReal int
	baseFake int
	comments []seedComment
}

func sampleNewsItems() []seedNews {
	return []seedNews{
		{
			topic:       "First Human Brain-to-Computer Interface Allows Telepathy",
			shortDetail: "A new brain-computer interface has enabled the first two-way telepathic communication between two human subjects.",
			fullDetail:  "A team of neuroscientists has unveiled a brain-computer interface that reportedly facilitates direct thought communication between two volunteers. Independent researchers have not been able to reproduce the results, and the paper has not passed peer review.",
			image:       "https://images.realcheck.io/seed/telepathy.png",
			reporter:    "Amara Lee",
			dateTime:    time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC),
			baseReal:    981,
			baseFake:    125,
			comments: []seedComment{
				{"neuro_fan", "The lab published raw data, looks legit to me.", models.VoteReal, 2 * time.Hour},
				{"skeptic42", "No peer review, no replication. Classic hype.", models.VoteFake, 5 * time.Hour},
				{"jchen", "I attended the demo, it worked as described.", models.VoteReal, 26 * time.Hour},
				{"maria.k", "Saw the press kit, the footage is edited.", models.VoteFake, 48 * time.Hour},
			},
		},
		{
			topic:       "City Council Approves Free Public Transit Pilot",
			shortDetail: "A twelve-month pilot makes all bus and tram lines free of charge inside the city core starting next month.",
			fullDetail:  "The council voted 9-2 to fund a year-long fare-free transit pilot covering the central zone. Funding comes from the existing congestion charge surplus. The transit authority confirmed the schedule in a press release on its official site.",
			image:       "https://images.realcheck.io/seed/transit.png",
			reporter:    "Daniel Okafor",
			dateTime:    time.Date(2025, 3, 2, 14, 30, 0, 0, time.UTC),
			baseReal:    4,
			baseFake:    1,
			comments: []seedComment{
				{"commuter_jo", "Confirmed on the city website, it is real.", models.VoteReal, time.Hour},
				{"taxwatch", "The press release is real, I checked.", models.VoteReal, 3 * time.Hour},
			},
		},
		{
			topic:       "Chocolate Cures Seasonal Flu, Study Claims",
			shortDetail: "A viral post claims a university study proved dark chocolate eliminates flu symptoms within 24 hours.",
			fullDetail:  "The circulating screenshot cites a study that does not exist in the university's publication database. The named professor denies authorship. No registered trial matches the described protocol.",
			image:       "https://images.realcheck.io/seed/chocolate.png",
			reporter:    "Priya Nair",
			dateTime:    time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC),
			baseReal:    2,
			baseFake:    17,
			comments: []seedComment{
				{"flu_doc", "The cited study does not exist. Fake.", models.VoteFake, 30 * time.Minute},
				{"chocolover", "I mean I wish it were true...", models.VoteFake, 4 * time.Hour},
				{"sam_p", "The professor posted a denial himself.", models.VoteFake, 9 * time.Hour},
			},
		},
	}
}

// buildSeedNews 把样例展开成实体。评论的票走和运行时一样的增量路径
// 叠加到基线上，计数永远不从评论重新汇总
func buildSeedNews(sample seedNews) *models.News {
	news := &models.News{
		Topic:       sample.topic,
		ShortDetail: sample.shortDetail,
		FullDetail:  sample.fullDetail,
		Image:       sample.image,
		Reporter:    sample.reporter,
		DateTime:    sample.dateTime,
		Removed:     false,
		RealVotes:   sample.baseReal,
		FakeVotes:   sample.baseFake,
	}

	for _, c := range sample.comments {
		news.Comments = append(news.Comments, models.Comment{
			Username:  c.username,
			Text:      c.text,
			Vote:      c.vote,
			CreatedAt: sample.dateTime.Add(c.age),
		})
		if c.vote == models.VoteReal {
			news.RealVotes++
		} else {
			news.FakeVotes++
		}
	}

	return news
}

func (s *SeedService) seedSampleNews() error {
	var count int64
	if err := s.db.Model(&models.News{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count news: %w", err)
	}
	if count > 0 {
		log.Println("database already populated (news), skipping sample data")
		return nil
	}

	samples := sampleNewsItems()
	for _, sample := range samples {
		if err := s.db.Create(buildSeedNews(sample)).Error; err != nil {
			return fmt.Errorf("failed to seed news %q: %w", sample.topic, err)
		}
	}

	log.Printf("seeded %d sample news items", len(samples))
	return nil
}
