package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"warbler/internal/emotion"
	"warbler/internal/feedcache"
	"warbler/internal/media"
	"warbler/internal/metrics"
	"warbler/internal/model"
	"warbler/internal/theme"
	"warbler/internal/util"
)

func promptLine(label string) (string, error) {
	fmt.Print(label)
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func cmdRegister() error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	username := fs.String("user", "", "username")
	email := fs.String("email", "", "email address")
	_ = fs.Parse(os.Args[2:])
	if *username == "" || *email == "" {
		return errors.New("register requires -user and -email")
	}
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	ctx := context.Background()
	u, err := a.client.Register(ctx, *username, *email, password)
	if err != nil {
		return err
	}
	token, err := a.client.Login(ctx, *username, password)
	if err != nil {
		return err
	}
	a.session.Login(token, u)
	theme.PrintBanner()
	fmt.Println("Welcome, @" + u.Username)
	return nil
}

func cmdLogin() error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	username := fs.String("user", "", "username")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	name := *username
	if name == "" {
		name = a.cfg.Account.Username
	}
	if name == "" {
		if name, err = promptLine("Username: "); err != nil {
			return err
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	ctx := context.Background()
	token, err := a.client.Login(ctx, name, password)
	if err != nil {
		return err
	}
	// The /me fetch runs with the fresh token already persisted by Login.
	a.session.Login(token, model.User{Username: name})
	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.session.Logout()
		return err
	}
	a.session.UpdateUser(u)
	fmt.Println("Logged in as @" + u.Username)
	return nil
}

func cmdLogout() error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	a.session.Logout()
	fmt.Println("Logged out.")
	return nil
}

func cmdFeed() error {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	metrics.StartServer(a.cfg.Metrics.Addr)
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if err := a.home.EnsureLoaded(ctx, a.client.HomeFeed); err != nil {
		return fmt.Errorf("feed load failed (run again to retry): %w", err)
	}
	p := a.theme.Palette()
	for _, t := range a.home.Tweets() {
		printTweet(p, t)
	}
	return nil
}

func cmdCompose() error {
	fs := flag.NewFlagSet("compose", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	text := fs.String("text", "", "tweet content")
	mediaPath := fs.String("media", "", "path to an image or video to attach")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	content := util.NormalizeWhitespace(*text)
	if err := model.ValidateTweetContent(content); err != nil {
		return err
	}
	mediaID, mediaType := "", ""
	if *mediaPath != "" {
		data, err := os.ReadFile(*mediaPath)
		if err != nil {
			return err
		}
		kind, err := media.ValidateUpload(*mediaPath, int64(len(data)), a.cfg.Media.MaxUploadBytes)
		if err != nil {
			return err
		}
		id, err := a.client.UploadTweetMedia(ctx, *mediaPath, data)
		if err != nil {
			return err
		}
		mediaID, mediaType = id, string(kind)
	}
	p := a.theme.Palette()
	for _, handle := range util.Mentions(content) {
		if !a.mentionResolves(ctx, handle) {
			fmt.Println(p.Error.Render("warning: @" + handle + " does not match any user"))
		}
	}
	t, err := a.client.CreateTweet(ctx, content, mediaID, mediaType, util.Hashtags(content))
	if err != nil {
		return err
	}
	a.home.Prepend(t)
	fmt.Println(p.Accent.Render("Posted:"))
	printTweet(p, t)
	return nil
}

// mentionResolves checks a mentioned handle against user search. Lookup
// failures pass: a flaky search should not block a post.
func (a *app) mentionResolves(ctx context.Context, handle string) bool {
	users, err := a.client.SearchUsers(ctx, handle)
	if err != nil {
		return true
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, handle) {
			return true
		}
	}
	return false
}

func cmdProfile() error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	user := fs.String("user", "", "username (defaults to the logged-in user)")
	tab := fs.String("tab", "tweets", "tweets, likes, retweets, bookmarks, followers, or following")
	bio := fs.String("bio", "", "set your bio")
	photo := fs.String("photo", "", "upload a new profile photo")
	banner := fs.String("banner", "", "upload a new banner image")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	snap := a.session.Snapshot()
	name := *user
	if name == "" {
		name = snap.User.Username
	}
	if *bio != "" || *photo != "" || *banner != "" {
		if name != snap.User.Username {
			return errors.New("only your own profile can be edited")
		}
		if err := a.editProfile(ctx, *bio, *photo, *banner); err != nil {
			return err
		}
	}
	stats, err := a.client.UserStats(ctx, name)
	if err != nil {
		return err
	}
	p := a.theme.Palette()
	fmt.Printf("%s  %s followers, %s following\n",
		p.Handle.Render("@"+name),
		p.Accent.Render(fmt.Sprint(stats.FollowersCount)),
		p.Accent.Render(fmt.Sprint(stats.FollowingCount)))
	if name != snap.User.Username {
		following, err := a.client.FollowStatus(ctx, name)
		if err != nil {
			return err
		}
		if following {
			fmt.Println(p.Muted.Render("You follow this account."))
		}
	}

	if *tab == "followers" || *tab == "following" {
		listUsers := a.client.Followers
		if *tab == "following" {
			listUsers = a.client.Following
		}
		users, err := listUsers(ctx, name)
		if err != nil {
			return fmt.Errorf("%s load failed (run again to retry): %w", *tab, err)
		}
		for _, u := range users {
			fmt.Printf("%s  %s\n", p.Handle.Render("@"+u.Username), p.Muted.Render(u.Bio))
		}
		return nil
	}

	var view feedcache.View
	var fetch func(ctx context.Context) ([]model.Tweet, error)
	switch *tab {
	case "tweets":
		view = feedcache.ViewProfileTweets
		fetch = func(ctx context.Context) ([]model.Tweet, error) { return a.client.UserTweets(ctx, name) }
	case "likes":
		view = feedcache.ViewProfileLikes
		fetch = func(ctx context.Context) ([]model.Tweet, error) { return a.client.LikedTweets(ctx, name) }
	case "retweets":
		view = feedcache.ViewProfileRetweets
		fetch = func(ctx context.Context) ([]model.Tweet, error) { return a.client.RetweetedTweets(ctx, name) }
	case "bookmarks":
		if name != snap.User.Username {
			return errors.New("bookmarks are visible only on your own profile")
		}
		view = feedcache.ViewProfileBookmarks
		fetch = func(ctx context.Context) ([]model.Tweet, error) { return a.client.BookmarkedTweets(ctx, name) }
	default:
		return fmt.Errorf("unknown tab %q", *tab)
	}
	cache := feedcache.New(view)
	a.hub.Register(cache)
	if err := cache.EnsureLoaded(ctx, fetch); err != nil {
		return fmt.Errorf("%s load failed (run again to retry): %w", *tab, err)
	}
	for _, t := range cache.Tweets() {
		printTweet(p, t)
	}
	return nil
}

func (a *app) editProfile(ctx context.Context, bio, photo, banner string) error {
	upload := func(path string, do func(context.Context, string, []byte) (string, error)) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if k, err := media.ValidateUpload(path, int64(len(data)), a.cfg.Media.MaxUploadBytes); err != nil {
			return err
		} else if k != media.KindImage {
			return media.ErrUnsupportedType
		}
		_, err = do(ctx, path, data)
		return err
	}
	if photo != "" {
		if err := upload(photo, a.client.UploadProfilePhoto); err != nil {
			return err
		}
	}
	if banner != "" {
		if err := upload(banner, a.client.UploadBannerPhoto); err != nil {
			return err
		}
	}
	if bio != "" {
		u, err := a.client.UpdateProfile(ctx, bio)
		if err != nil {
			return err
		}
		a.session.UpdateUser(u)
	} else if err := a.session.RefreshUser(ctx); err != nil {
		return err
	}
	return nil
}

func cmdFollow() error {
	fs := flag.NewFlagSet("follow", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	user := fs.String("user", "", "username to follow or unfollow")
	_ = fs.Parse(os.Args[2:])
	if *user == "" {
		return errors.New("follow requires -user")
	}
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	following, err := a.client.FollowStatus(ctx, *user)
	if err != nil {
		return err
	}
	stats, err := a.client.UserStats(ctx, *user)
	if err != nil {
		return err
	}
	subject := model.User{Username: *user, FollowersCount: stats.FollowersCount, FollowingCount: stats.FollowingCount}
	_, now, err := a.mutator.ToggleFollow(ctx, subject, following)
	if err != nil {
		return err
	}
	if now {
		fmt.Println("Now following @" + *user)
	} else {
		fmt.Println("Unfollowed @" + *user)
	}
	return nil
}

// cmdToggle handles like, retweet, and bookmark. The target comes from the
// cached home feed when present; otherwise a minimal tweet is seeded from
// the status endpoints so the flip still starts from the server's view.
func cmdToggle(action string) error {
	fs := flag.NewFlagSet(action, flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	id := fs.String("id", "", "tweet id")
	_ = fs.Parse(os.Args[2:])
	if *id == "" {
		return fmt.Errorf("%s requires -id", action)
	}
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	metrics.StartServer(a.cfg.Metrics.Addr)
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	t, err := a.lookupTweet(ctx, *id)
	if err != nil {
		return err
	}
	switch action {
	case "like":
		t, err = a.mutator.ToggleLike(ctx, t)
	case "retweet":
		t, err = a.mutator.ToggleRetweet(ctx, t)
	case "bookmark":
		t, err = a.mutator.ToggleBookmark(ctx, t)
	}
	if err != nil {
		return err
	}
	p := a.theme.Palette()
	printTweet(p, t)
	return nil
}

func (a *app) lookupTweet(ctx context.Context, id string) (model.Tweet, error) {
	if err := a.home.EnsureLoaded(ctx, a.client.HomeFeed); err == nil {
		if t, ok := a.home.Get(id); ok {
			return t, nil
		}
	}
	t := model.Tweet{ID: id}
	liked, err := a.client.LikeStatus(ctx, id)
	if err != nil {
		return model.Tweet{}, err
	}
	retweeted, err := a.client.RetweetStatus(ctx, id)
	if err != nil {
		return model.Tweet{}, err
	}
	t.UserLiked = liked
	t.UserRetweeted = retweeted
	return a.mutator.SeedViewerFlags(ctx, t)
}

func cmdComments() error {
	fs := flag.NewFlagSet("comments", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	id := fs.String("id", "", "tweet id")
	text := fs.String("text", "", "comment to add; omit to list")
	_ = fs.Parse(os.Args[2:])
	if *id == "" {
		return errors.New("comments requires -id")
	}
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	p := a.theme.Palette()
	if *text != "" {
		content := util.NormalizeWhitespace(*text)
		if err := model.ValidateTweetContent(content); err != nil {
			return err
		}
		c, err := a.client.CreateComment(ctx, *id, content)
		if err != nil {
			return err
		}
		if t, ok := a.home.Get(*id); ok {
			t.CommentCount++
			a.hub.Publish(t)
		}
		fmt.Printf("%s %s\n", p.Handle.Render("@"+c.AuthorUsername), c.Content)
		return nil
	}
	list, err := a.client.Comments(ctx, *id)
	if err != nil {
		return fmt.Errorf("comments load failed (run again to retry): %w", err)
	}
	for _, c := range list {
		fmt.Printf("%s %s  %s\n",
			p.Handle.Render("@"+c.AuthorUsername),
			c.Content,
			p.Muted.Render(c.CreatedAt.Format(time.RFC822)))
	}
	return nil
}

func cmdSearch() error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	query := fs.String("q", "", "search query")
	_ = fs.Parse(os.Args[2:])
	if *query == "" {
		return errors.New("search requires -q")
	}
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	res, err := a.client.Search(ctx, *query)
	if err != nil {
		return fmt.Errorf("search failed (run again to retry): %w", err)
	}
	p := a.theme.Palette()
	if len(res.Users) > 0 {
		fmt.Println(p.Title.Render("Users"))
		for _, u := range res.Users {
			fmt.Printf("%s  %s\n", p.Handle.Render("@"+u.Username), p.Muted.Render(u.Bio))
		}
	}
	if len(res.Tweets) > 0 {
		fmt.Println(p.Title.Render("Tweets"))
		cache := feedcache.New(feedcache.ViewSearch)
		a.hub.Register(cache)
		_ = cache.EnsureLoaded(ctx, func(context.Context) ([]model.Tweet, error) { return res.Tweets, nil })
		for _, t := range cache.Tweets() {
			printTweet(p, t)
		}
	}
	if len(res.Users) == 0 && len(res.Tweets) == 0 {
		fmt.Println(p.Muted.Render("No results."))
	}
	return nil
}

func cmdTrends() error {
	fs := flag.NewFlagSet("trends", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	tags, err := a.client.TrendingHashtags(ctx)
	if err != nil {
		return fmt.Errorf("trends load failed (run again to retry): %w", err)
	}
	p := a.theme.Palette()
	for _, tag := range tags {
		fmt.Printf("%s %s\n", p.Accent.Render("#"+tag.Tag), p.Muted.Render(fmt.Sprintf("%d tweets", tag.Count)))
	}
	return nil
}

func cmdRecommended() error {
	fs := flag.NewFlagSet("recommended", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	limit := fs.Int("limit", 20, "max results")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	recs, err := a.client.Recommended(ctx, *limit)
	if err != nil {
		return fmt.Errorf("recommendations load failed (run again to retry): %w", err)
	}
	p := a.theme.Palette()
	for _, r := range recs {
		printTweet(p, r.Tweet)
		if len(r.Reasons) > 0 {
			fmt.Println(p.Muted.Render("  why: " + strings.Join(r.Reasons, ", ")))
		}
	}
	return nil
}

func cmdNotifications() error {
	fs := flag.NewFlagSet("notifications", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	watch := fs.Bool("watch", false, "poll continuously")
	readID := fs.String("read", "", "mark one notification read")
	readAll := fs.Bool("read-all", false, "mark every notification read")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	metrics.StartServer(a.cfg.Metrics.Addr)
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if *watch {
		return a.center.Run(ctx, a.cfg.Notifications.PollInterval)
	}
	list, err := a.center.Open(ctx)
	if err != nil {
		return fmt.Errorf("notifications load failed (run again to retry): %w", err)
	}
	if *readID != "" {
		if err := a.center.MarkRead(ctx, *readID); err != nil {
			return err
		}
		list = a.center.Notifications()
	}
	if *readAll {
		if err := a.center.MarkAllRead(ctx); err != nil {
			return err
		}
		list = a.center.Notifications()
	}
	p := a.theme.Palette()
	fmt.Printf("%s unread\n", p.Accent.Render(fmt.Sprint(a.center.Unread())))
	if ts, ok := a.center.LastPolled(ctx); ok {
		fmt.Println(p.Muted.Render("last polled " + ts.Local().Format(time.RFC822)))
	}
	for _, n := range list {
		printNotification(p, n)
	}
	return nil
}

func cmdReact() error {
	fs := flag.NewFlagSet("react", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	id := fs.String("id", "", "tweet id")
	framePath := fs.String("frame", "", "path to a captured JPEG or PNG frame")
	summary := fs.Bool("summary", false, "show the reaction summary instead of reacting")
	list := fs.Bool("list", false, "list individual reactions instead of reacting")
	_ = fs.Parse(os.Args[2:])
	if *id == "" {
		return errors.New("react requires -id")
	}
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	p := a.theme.Palette()
	if *summary {
		s, err := a.reactor().Summary(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("%s reactions\n", p.Accent.Render(fmt.Sprint(s.Total)))
		for mood, n := range s.Counts {
			fmt.Printf("  %s %d\n", mood, n)
		}
		return nil
	}
	if *list {
		reactions, err := a.client.TweetReactions(ctx, *id)
		if err != nil {
			return err
		}
		for _, r := range reactions {
			fmt.Printf("%s %s  %s\n", p.Accent.Render(r.Emotion), r.UserID,
				p.Muted.Render(r.CreatedAt.Format(time.RFC822)))
		}
		return nil
	}
	if *framePath == "" {
		return errors.New("react requires -frame (or -summary or -list)")
	}
	frame, err := os.ReadFile(*framePath)
	if err != nil {
		return err
	}
	det, err := a.reactor().ReactWithFrame(ctx, *id, frame)
	if err != nil {
		return err
	}
	fmt.Printf("Reacted with %s (%.0f%% confident)\n",
		p.Accent.Render(det.Dominant), det.Confidence[det.Dominant]*100)
	if t, ok := a.home.Get(*id); ok {
		t.UserReaction = det.Dominant
		a.hub.Publish(t)
	}
	return nil
}

// cmdEvents reads the local diagnostic log: every optimistic mutation and
// its outcome, as recorded at toggle time. Purely local, no network.
func cmdEvents() error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	cfgPath := fs.String("config", "./warbler.yaml", "config path")
	since := fs.Duration("since", 24*time.Hour, "how far back to look")
	typ := fs.String("type", "", "filter by action (like, retweet, bookmark, follow)")
	_ = fs.Parse(os.Args[2:])
	a, err := openApp(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	ctx := context.Background()
	end := time.Now().Add(time.Second)
	start := end.Add(-*since)
	events, err := a.db.LoadEventsRange(ctx, start, end, *typ)
	if err != nil {
		return err
	}
	p := a.theme.Palette()
	if *typ != "" {
		n, err := a.db.CountEventsWithin(ctx, start, end, *typ)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s events in the last %s\n", p.Accent.Render(fmt.Sprint(n)), *typ, *since)
	}
	for _, e := range events {
		line := fmt.Sprintf("%s  %s %s %s", e.TS.Local().Format(time.RFC822), e.Type, e.EntityID, e.Outcome)
		if e.Outcome == "rollback" {
			fmt.Println(p.Error.Render(line))
		} else {
			fmt.Println(p.Muted.Render(line))
		}
	}
	return nil
}

func printTweet(p theme.Palette, t model.Tweet) {
	head := "@" + t.AuthorUsername
	if t.IsRetweet && t.OriginalAuthorUsername != "" {
		head += "  " + "↻ @" + t.OriginalAuthorUsername
	}
	fmt.Printf("%s  %s\n", p.Handle.Render(head), p.Muted.Render(t.CreatedAt.Format(time.RFC822)))
	fmt.Println(p.Body.Render(t.Content))
	flags := ""
	if t.UserLiked {
		flags += " liked"
	}
	if t.UserRetweeted {
		flags += " retweeted"
	}
	if t.UserBookmarked {
		flags += " bookmarked"
	}
	if t.UserReaction != "" {
		flags += " " + t.UserReaction
	}
	line := fmt.Sprintf("%d likes  %d comments  %d retweets", t.LikeCount, t.CommentCount, t.RetweetCount)
	if flags != "" {
		line += "  [" + strings.TrimSpace(flags) + "]"
	}
	fmt.Println(p.Muted.Render(line))
	fmt.Println(p.Muted.Render("id: " + t.ID))
	fmt.Println()
}

func printNotification(p theme.Palette, n model.Notification) {
	mark := p.Accent.Render("●")
	if n.Read {
		mark = p.Muted.Render("○")
	}
	var what string
	switch n.Type {
	case model.NotificationLike:
		what = "liked your tweet"
	case model.NotificationComment:
		what = "commented: " + n.CommentContent
	case model.NotificationRetweet:
		what = "retweeted your tweet"
	case model.NotificationFollow:
		what = "followed you"
	case model.NotificationMention:
		what = "mentioned you"
	default:
		what = n.Type
	}
	fmt.Printf("%s %s %s  %s\n", mark, p.Handle.Render("@"+n.SenderUsername), what,
		p.Muted.Render(n.CreatedAt.Format(time.RFC822)))
}

func (a *app) reactor() *emotion.Reactor { return emotion.NewReactor(a.client) }
