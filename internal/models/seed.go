package models

import "time"

// Seed data used when the durable store holds nothing usable for a
// collection. Returned fresh on every call so callers can mutate freely.

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func tsPtr(year int, month time.Month, day, hour, min int) *time.Time {
	t := ts(year, month, day, hour, min)
	return &t
}

// SeedContents returns the built-in starter documents
func SeedContents() []Content {
	return []Content{
		{
			ID:     "1",
			Title:  "10 Effective Ways to Improve Productivity",
			Body:   "# Introduction\n\nProductivity is essential in today's fast-paced world. This article explores effective strategies to enhance your productivity and achieve more in less time.\n\n## Time Management\n\nEffective time management is the cornerstone of productivity. Try techniques like the Pomodoro method or time blocking to organize your day efficiently.\n\n## Eliminate Distractions\n\nMinimize interruptions by turning off notifications and creating a dedicated workspace.\n\n## Prioritize Tasks\n\nFocus on high-impact activities first using methods like the Eisenhower Matrix.",
			Status: ContentStatusPublished,
			CreatedAt:          ts(2023, time.November, 15, 10, 30),
			UpdatedAt:          ts(2023, time.November, 16, 14, 20),
			PublishedAt:        tsPtr(2023, time.November, 16, 15, 0),
			PublishedPlatforms: []string{"Medium", "WordPress"},
			Sections: []ContentSection{
				{ID: "s1", Title: "Introduction", Content: "Productivity is essential in today's fast-paced world."},
				{ID: "s2", Title: "Time Management", Content: "Effective time management is the cornerstone of productivity."},
				{ID: "s3", Title: "Eliminate Distractions", Content: "Minimize interruptions by turning off notifications and creating a dedicated workspace."},
				{ID: "s4", Title: "Prioritize Tasks", Content: "Focus on high-impact activities first using methods like the Eisenhower Matrix."},
			},
			Images: []ContentImage{
				{ID: "img1", Alt: "Productivity desk setup", URL: "https://images.pexels.com/photos/1181605/pexels-photo-1181605.jpeg"},
				{ID: "img2", Alt: "Time management", URL: "https://images.pexels.com/photos/1438081/pexels-photo-1438081.jpeg"},
			},
		},
		{
			ID:        "2",
			Title:     "The Future of Artificial Intelligence",
			Body:      "Artificial Intelligence is revolutionizing various sectors, from healthcare to transportation. This article explores the current state and future prospects of AI technology.",
			Status:    ContentStatusDraft,
			CreatedAt: ts(2023, time.November, 18, 9, 15),
			UpdatedAt: ts(2023, time.November, 19, 11, 40),
			Sections: []ContentSection{
				{ID: "s1", Title: "Current AI Landscape", Content: "An overview of today's AI capabilities and implementations."},
				{ID: "s2", Title: "AI in Healthcare", Content: "How AI is transforming diagnosis, treatment, and patient care."},
				{ID: "s3", Title: "Ethical Considerations", Content: "Addressing the moral implications of advanced AI systems."},
			},
			Images: []ContentImage{
				{ID: "img1", Alt: "AI concept illustration", URL: "https://images.pexels.com/photos/373543/pexels-photo-373543.jpeg"},
			},
		},
		{
			ID:        "3",
			Title:     "Sustainable Living: Small Changes, Big Impact",
			Body:      "Learn how minor adjustments to daily habits can contribute significantly to environmental conservation.",
			Status:    ContentStatusDraft,
			CreatedAt: ts(2023, time.November, 20, 13, 45),
			UpdatedAt: ts(2023, time.November, 20, 16, 30),
		},
	}
}

// SeedPlatformAccounts returns the built-in publishing destinations
func SeedPlatformAccounts() []PlatformAccount {
	return []PlatformAccount{
		{ID: "p1", PlatformName: "Medium", Username: "contentcreator", IsConnected: true, AvatarURL: DefaultAvatarURL},
		{ID: "p2", PlatformName: "WordPress", Username: "creator_blog", IsConnected: true, AvatarURL: DefaultAvatarURL},
		{ID: "p3", PlatformName: "LinkedIn", Username: "professional_writer", IsConnected: false, AvatarURL: DefaultAvatarURL},
		{ID: "p4", PlatformName: "Twitter", Username: "@content_writer", IsConnected: false, AvatarURL: DefaultAvatarURL},
	}
}

// MockNewsArticles returns the fixed article set served when no usable news
// API key is configured
func MockNewsArticles() []NewsArticle {
	now := time.Now().UTC().Format(time.RFC3339)
	return []NewsArticle{
		{
			Title:       "Mock Article 1: The Future of AI",
			Description: "A deep dive into the advancements and implications of artificial intelligence.",
			URL:         "#",
			Source:      NewsSource{Name: "Mock News"},
			PublishedAt: now,
			Image:       "https://via.placeholder.com/300x200?text=AI+Future",
			Content:     "This is some mock content about the future of AI...",
		},
		{
			Title:       "Mock Article 2: Global Economic Trends",
			Description: "An overview of the current global economic trends and predictions for the next quarter.",
			URL:         "#",
			Source:      NewsSource{Name: "Mock Business Today"},
			PublishedAt: now,
			Image:       "https://via.placeholder.com/300x200?text=Economy",
			Content:     "This is some mock content about global economic trends...",
		},
	}
}
