package service

import (
	"Trophy/config"
	"Trophy/dao"
	"Trophy/models"
	"Trophy/pkg/gallery"
	"Trophy/types"
	"context"

	"github.com/sourcegraph/conc/pool"
)

var _ IGalleryService = (*GalleryService)(nil)

type IGalleryService interface {
	// List 通用列表，带总数，不含图片数据
	List(ctx context.Context, req *types.ListImagesRequest) (*types.ListImagesResponse, error)
	// Landscape 风景瀑布流，时间戳游标 + 多取一条
	Landscape(ctx context.Context, req *types.LandscapeRequest) (*types.GalleryResponse, error)
	// Trophy 战利品瀑布流，时间戳游标 + 总数
	Trophy(ctx context.Context, req *types.TrophyRequest) (*types.GalleryResponse, error)
}

type GalleryService struct {
	Gallery   *config.Gallery
	ImageRepo *dao.Image
	Clock     Clock
}

func (s *GalleryService) List(ctx context.Context, req *types.ListImagesRequest) (*types.ListImagesResponse, error) {
	q, err := gallery.Normalize(gallery.ListView(s.Gallery.ListLimit), req.Params(), s.Clock.now())
	if err != nil {
		return nil, err
	}
	rows, page, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]types.ImageListItem, 0, len(rows))
	for _, img := range rows {
		items = append(items, types.NewImageListItem(img))
	}
	return &types.ListImagesResponse{
		Images:     items,
		Pagination: page,
		Filters:    q.Filters(),
	}, nil
}

func (s *GalleryService) Landscape(ctx context.Context, req *types.LandscapeRequest) (*types.GalleryResponse, error) {
	q, err := gallery.Normalize(gallery.LandscapeView(s.Gallery.LandscapeLimit), req.Params(), s.Clock.now())
	if err != nil {
		return nil, err
	}
	return s.withData(ctx, q)
}

func (s *GalleryService) Trophy(ctx context.Context, req *types.TrophyRequest) (*types.GalleryResponse, error) {
	q, err := gallery.Normalize(gallery.TrophyView(s.Gallery.TrophyLimit), req.Params(), s.Clock.now())
	if err != nil {
		return nil, err
	}
	return s.withData(ctx, q)
}

func (s *GalleryService) withData(ctx context.Context, q *gallery.Query) (*types.GalleryResponse, error) {
	rows, page, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]types.ImageWithData, 0, len(rows))
	for _, img := range rows {
		items = append(items, types.NewImageWithData(img))
	}
	return &types.GalleryResponse{
		Images:     items,
		Pagination: page,
		Filters:    q.Filters(),
	}, nil
}

// fetch 按视图的分页方式取数据，计数与分页查询并发执行
func (s *GalleryService) fetch(ctx context.Context, q *gallery.Query) ([]*models.Image, gallery.Pagination, error) {
	if q.View.Mode == gallery.ModeLookahead {
		rows, err := s.ImageRepo.Gallery(ctx, q)
		if err != nil {
			return nil, gallery.Pagination{}, err
		}
		rows, page := gallery.Trim(q, rows)
		return rows, page, nil
	}

	var (
		rows  []*models.Image
		total int64
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		rows, err = s.ImageRepo.Gallery(ctx, q)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		total, err = s.ImageRepo.Count(ctx, q)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, gallery.Pagination{}, err
	}
	return rows, gallery.Counted(q, total), nil
}
